package pgn

import (
	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/catachess/chesscore/pkg/board"
)

// frame is one level of the variation stack: the sibling moves recorded so
// far at this depth, and the node (if any) they are an alternative to.
type frame struct {
	nodes  []*Node
	parent *Node
}

// VariationWriter records a move tree with nested sidelines. StartVariation
// opens a new frame branching from the last move recorded in the enclosing
// frame; EndVariation closes it, chaining the frame's moves via Next and
// attaching the chain head to the branch point's Variations. Unlike the
// writer this replaces, closing a variation never drops anything recorded
// inside it: every node's own Variations survive the chain walk untouched,
// so nested sidelines render fully instead of only the first child.
type VariationWriter struct {
	tags           *Tags
	stack          []*frame
	rootVariations []*Node
}

func NewVariationWriter() *VariationWriter {
	return &VariationWriter{tags: NewTags(), stack: []*frame{{}}}
}

func (w *VariationWriter) Tags() *Tags { return w.tags }

func (w *VariationWriter) current() *frame {
	return w.stack[len(w.stack)-1]
}

func (w *VariationWriter) AddMove(move board.Move, stateBefore *board.BoardState, san string) {
	f := w.current()
	f.nodes = append(f.nodes, &Node{
		Move:       Move{SAN: san},
		MoveNumber: stateBefore.FullmoveNumber,
		White:      stateBefore.Turn == board.White,
	})
}

func (w *VariationWriter) AddComment(text string) {
	f := w.current()
	if len(f.nodes) == 0 {
		return
	}
	last := f.nodes[len(f.nodes)-1]
	last.Move.Comment = lang.Some(escapeComment(text))
}

func (w *VariationWriter) AddNAG(n NAG) {
	f := w.current()
	if len(f.nodes) == 0 {
		return
	}
	last := f.nodes[len(f.nodes)-1]
	last.Move.NAGs = append(last.Move.NAGs, n)
}

func (w *VariationWriter) SetResult(result string) {
	w.tags.SetResult(result)
}

// StartVariation opens a frame for an alternative to the last move recorded
// in the current frame: the sideline replaces that move, starting from the
// position before it, and is attached to it and rendered right after it.
func (w *VariationWriter) StartVariation() error {
	f := w.current()
	if len(f.nodes) == 0 {
		return &WriteError{Msg: "StartVariation: no move to branch from"}
	}
	parent := f.nodes[len(f.nodes)-1]
	w.stack = append(w.stack, &frame{parent: parent})
	return nil
}

// EndVariation closes the current frame, chaining its moves and attaching
// the chain to the branch point it opened against.
func (w *VariationWriter) EndVariation() error {
	if len(w.stack) <= 1 {
		return &WriteError{Msg: "EndVariation: no matching StartVariation"}
	}
	f := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	if len(f.nodes) == 0 {
		return &WriteError{Msg: "EndVariation: empty variation"}
	}

	for i := 0; i < len(f.nodes)-1; i++ {
		f.nodes[i].Next = f.nodes[i+1]
	}
	head := f.nodes[0]
	if f.parent != nil {
		f.parent.Variations = append(f.parent.Variations, head)
	} else {
		w.rootVariations = append(w.rootVariations, head)
	}
	return nil
}

// String renders the complete PGN text. Open frames (an unbalanced
// StartVariation) are ignored; only the bottom frame and anything properly
// closed via EndVariation is rendered.
func (w *VariationWriter) String() string {
	tokens := renderMoveSequence(w.stack[0].nodes, true)
	for _, v := range w.rootVariations {
		tokens = append(tokens, renderVariation(v)...)
	}
	result, _ := w.tags.Get("Result")
	tokens = append(tokens, result)
	return renderGame(w.tags, tokens)
}
