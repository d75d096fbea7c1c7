package nodetree

import (
	"fmt"

	"github.com/catachess/chesscore/pkg/board"
	"github.com/catachess/chesscore/pkg/board/fen"
)

// BuildFENIndex replays each node's UCI move from its parent's FEN using
// the rule engine and returns node_id -> fen. It asserts the replayed FEN
// equals the node's stored FEN at every step, surfacing any mismatch as an
// InvalidVariationError; this is the adapter's integrity probe, not just a
// lookup. The virtual root is omitted from the result.
func BuildFENIndex(tree *Tree) (map[string]string, error) {
	out := make(map[string]string)
	root := tree.Root()
	if root == nil {
		return nil, &InvalidVariationError{Msg: "missing virtual root"}
	}

	parentState, err := fen.Decode(root.FEN)
	if err != nil {
		return nil, &InvalidVariationError{Msg: fmt.Sprintf("setup fen %q: %v", root.FEN, err)}
	}
	if err := replay(tree, root, parentState, out); err != nil {
		return nil, err
	}
	return out, nil
}

func replay(tree *Tree, node *Node, state *board.BoardState, out map[string]string) error {
	children := make([]string, 0, len(node.Variations)+1)
	if node.MainChild != "" {
		children = append(children, node.MainChild)
	}
	children = append(children, node.Variations...)

	for _, id := range children {
		child, ok := tree.Nodes[id]
		if !ok {
			return &InvalidVariationError{Msg: fmt.Sprintf("dangling child %q", id)}
		}

		move, err := board.ParseMove(child.UCI)
		if err != nil {
			return &InvalidVariationError{Msg: fmt.Sprintf("node %q: %v", child.ID, err)}
		}
		next, err := board.Apply(state, move)
		if err != nil {
			return &InvalidVariationError{Msg: fmt.Sprintf("node %q: replaying %q: %v", child.ID, child.UCI, err)}
		}

		replayed := fen.Encode(next)
		if replayed != child.FEN {
			return &InvalidVariationError{Msg: fmt.Sprintf("node %q: replayed fen %q does not match stored fen %q", child.ID, replayed, child.FEN)}
		}
		out[child.ID] = replayed

		if err := replay(tree, child, next, out); err != nil {
			return err
		}
	}
	return nil
}
