package nodetree

import (
	"fmt"

	"github.com/catachess/chesscore/pkg/board"
	"github.com/catachess/chesscore/pkg/pgn"
)

// BuildPGN renders tree to PGN text, walking from the virtual root. It is
// the definitive on-disk renderer: callers should never hand-serialize a
// tree any other way.
func BuildPGN(tree *Tree) (string, error) {
	w := pgn.NewVariationWriter()
	for k, v := range tree.Headers {
		w.Tags().Set(k, v)
	}
	if tree.Result != "" {
		w.SetResult(tree.Result)
	}

	root := tree.Root()
	if root == nil {
		return "", &InvalidVariationError{Msg: "missing virtual root"}
	}
	if err := writeLine(tree, w, root); err != nil {
		return "", err
	}
	return w.String(), nil
}

// writeLine walks node's main-child chain, adding every move along it, and
// at each step recurses into the alternatives to that move (the parent's
// other children) before continuing the line.
func writeLine(tree *Tree, w *pgn.VariationWriter, node *Node) error {
	cur := node
	for cur.MainChild != "" {
		child, ok := tree.Nodes[cur.MainChild]
		if !ok {
			return &InvalidVariationError{Msg: fmt.Sprintf("dangling main_child %q", cur.MainChild)}
		}
		addNodeMove(w, child)
		if err := writeVariations(tree, w, cur); err != nil {
			return err
		}
		cur = child
	}
	return nil
}

// writeVariations recurses into every alternative attached to node, each as
// its own parenthesized subtree, fully nested — not just the first one.
func writeVariations(tree *Tree, w *pgn.VariationWriter, node *Node) error {
	for _, vid := range node.Variations {
		v, ok := tree.Nodes[vid]
		if !ok {
			return &InvalidVariationError{Msg: fmt.Sprintf("dangling variation %q", vid)}
		}
		if err := w.StartVariation(); err != nil {
			return &InvalidVariationError{Msg: err.Error()}
		}
		addNodeMove(w, v)
		if err := writeLine(tree, w, v); err != nil {
			return err
		}
		if err := w.EndVariation(); err != nil {
			return &InvalidVariationError{Msg: err.Error()}
		}
	}
	return nil
}

func addNodeMove(w *pgn.VariationWriter, n *Node) {
	turn := board.White
	if n.Color == Black {
		turn = board.Black
	}
	stateBefore := &board.BoardState{Turn: turn, FullmoveNumber: n.MoveNumber}
	w.AddMove(board.Move{}, stateBefore, n.SAN)

	if text, ok := n.CommentAfter.V(); ok {
		w.AddComment(text)
	}
	for _, nag := range n.NAGs {
		w.AddNAG(pgn.NAG(nag))
	}
}
