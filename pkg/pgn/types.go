// Package pgn renders games and game trees as Portable Game Notation text.
// It is a writer only: a separate, out-of-scope parser is responsible for
// ingesting external PGN.
package pgn

import (
	"fmt"

	"github.com/seekerror/stdlib/pkg/lang"
)

// NAG is a Numeric Annotation Glyph, e.g. $1 for "!".
type NAG int

// nagSymbols maps the handful of NAGs with a conventional glyph. Any other
// NAG value serializes as "$N".
var nagSymbols = map[NAG]string{
	1: "!",
	2: "?",
	3: "!!",
	4: "??",
	5: "!?",
	6: "?!",
}

var symbolNAGs = func() map[string]NAG {
	m := make(map[string]NAG, len(nagSymbols))
	for n, sym := range nagSymbols {
		m[sym] = n
	}
	return m
}()

// FormatNAG renders a NAG the way the writer emits it inline after a move.
func FormatNAG(n NAG) string {
	if sym, ok := nagSymbols[n]; ok {
		return sym
	}
	return fmt.Sprintf("$%d", n)
}

// ParseNAGSymbol maps a conventional glyph (e.g. "!?") to its NAG number.
// Used by the NodeTree adapter when an annotation row carries a symbol
// instead of a raw number.
func ParseNAGSymbol(sym string) (NAG, bool) {
	n, ok := symbolNAGs[sym]
	return n, ok
}

// Move is a single recorded move: its SAN text plus any trailing comment
// and NAGs.
type Move struct {
	SAN     string
	Comment lang.Optional[string]
	NAGs    []NAG
}

// Node is one move in a game tree. MoveNumber/White locate it for PGN
// move-number rendering ("N." vs "N...").
//
// Next is the following move within this same line, present only for nodes
// reached by walking into a variation (a flat top-level or frame sequence
// uses a plain slice instead and leaves Next nil). Variations holds
// alternative sidelines that branch from the same position as this node —
// siblings of this node itself, rendered right after it. Nesting is
// arbitrary: any entry of Variations may itself have further
// Next/Variations.
type Node struct {
	Move          Move
	MoveNumber    int
	White         bool
	Next          *Node
	Variations    []*Node
	CommentBefore lang.Optional[string]
}

// Game is a complete, tag-annotated move tree ready for rendering.
type Game struct {
	Tags   *Tags
	Moves  []*Node
	Result string
}
