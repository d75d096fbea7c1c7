package pgn

import (
	"fmt"
	"strings"

	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/catachess/chesscore/pkg/board"
)

// Writer is the interface the session facade records moves through. Both
// concrete writers share the tag store and never perform legality checks
// of their own; the caller guarantees move/state are already legal.
type Writer interface {
	AddMove(move board.Move, stateBefore *board.BoardState, san string)
	AddComment(text string)
	AddNAG(n NAG)
	SetResult(result string)
	Tags() *Tags
	String() string
}

// MainlineWriter records a single, unbranching sequence of moves. AddMove
// appends a node without validation; AddComment/AddNAG mutate the most
// recently added node.
type MainlineWriter struct {
	tags  *Tags
	nodes []*Node
}

func NewMainlineWriter() *MainlineWriter {
	return &MainlineWriter{tags: NewTags()}
}

func (w *MainlineWriter) Tags() *Tags { return w.tags }

func (w *MainlineWriter) AddMove(move board.Move, stateBefore *board.BoardState, san string) {
	w.nodes = append(w.nodes, &Node{
		Move:       Move{SAN: san},
		MoveNumber: stateBefore.FullmoveNumber,
		White:      stateBefore.Turn == board.White,
	})
}

func (w *MainlineWriter) AddComment(text string) {
	if len(w.nodes) == 0 {
		return
	}
	last := w.nodes[len(w.nodes)-1]
	last.Move.Comment = lang.Some(escapeComment(text))
}

func (w *MainlineWriter) AddNAG(n NAG) {
	if len(w.nodes) == 0 {
		return
	}
	last := w.nodes[len(w.nodes)-1]
	last.Move.NAGs = append(last.Move.NAGs, n)
}

func (w *MainlineWriter) SetResult(result string) {
	w.tags.SetResult(result)
}

// String renders the complete PGN text: tags, a blank line, then move text.
// Each White move is prefixed "N.". A Black move is prefixed "N..." only
// when it is the first move rendered or immediately follows a comment.
func (w *MainlineWriter) String() string {
	tokens := renderMoveSequence(w.nodes, true)
	result, _ := w.tags.Get("Result")
	tokens = append(tokens, result)
	return renderGame(w.tags, tokens)
}

// renderMoveSequence renders a flat sequence of sibling nodes (either the
// top-level mainline or one frame's worth of moves inside a variation),
// emitting "N." / "N..." move-number prefixes and, for every node, any
// sideline variations attached beyond its own continuation.
func renderMoveSequence(nodes []*Node, needsBlackPrefixInitially bool) []string {
	var tokens []string
	needsBlackPrefix := needsBlackPrefixInitially

	for _, n := range nodes {
		if n.White {
			tokens = append(tokens, fmt.Sprintf("%d.", n.MoveNumber))
		} else if needsBlackPrefix {
			tokens = append(tokens, fmt.Sprintf("%d...", n.MoveNumber))
		}
		tokens = append(tokens, n.Move.SAN+renderNAGs(n.Move.NAGs))

		needsBlackPrefix = false
		if c, ok := n.Move.Comment.V(); ok {
			tokens = append(tokens, "{"+c+"}")
			needsBlackPrefix = true
		}

		// Every sideline is rendered as its own parenthesized, fully
		// recursive subtree — the corrected behavior for the documented
		// nested-variation flattening defect, which only ever followed a
		// single child and silently dropped the rest.
		for _, v := range n.Variations {
			tokens = append(tokens, renderVariation(v)...)
			needsBlackPrefix = true
		}
	}
	return tokens
}

// renderVariation renders one sideline with its parentheses joined to its
// first and last tokens, e.g. "(1... c5)".
func renderVariation(head *Node) []string {
	tokens := renderMoveSequence(flattenChain(head), true)
	tokens[0] = "(" + tokens[0]
	tokens[len(tokens)-1] += ")"
	return tokens
}

// flattenChain walks a variation's node chain via Next into a flat slice so
// renderMoveSequence can render it the same way it renders the top-level
// mainline. It does not touch Variations: every node along the chain still
// renders its own sidelines independently.
func flattenChain(head *Node) []*Node {
	var out []*Node
	for cur := head; cur != nil; cur = cur.Next {
		out = append(out, cur)
	}
	return out
}

func renderGame(tags *Tags, tokens []string) string {
	var sb strings.Builder
	for _, line := range tags.Render() {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(wrapTokens(tokens))
	return sb.String()
}
