package pgn

import (
	"strings"
)

const wrapColumn = 80

// escapeComment escapes the one character PGN comments must not contain
// unescaped: the closing brace.
func escapeComment(s string) string {
	return strings.ReplaceAll(s, "}", `\}`)
}

// renderNAGs renders a move's trailing NAG glyphs, space-separated.
func renderNAGs(nags []NAG) string {
	var sb strings.Builder
	for _, n := range nags {
		sb.WriteString(" ")
		sb.WriteString(FormatNAG(n))
	}
	return sb.String()
}

// wrapTokens joins tokens with single spaces, wrapping to wrapColumn.
func wrapTokens(tokens []string) string {
	var sb strings.Builder
	col := 0
	for i, tok := range tokens {
		if i > 0 {
			if col+1+len(tok) > wrapColumn {
				sb.WriteString("\n")
				col = 0
			} else {
				sb.WriteString(" ")
				col++
			}
		}
		sb.WriteString(tok)
		col += len(tok)
	}
	return sb.String()
}
