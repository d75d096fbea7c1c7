// Package nodetree adapts the PGN move-tree model to and from flat database
// row contracts (variation/annotation/chapter rows) and renders a tree to
// PGN text or a replay-verified FEN index.
package nodetree

import (
	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/catachess/chesscore/pkg/board/fen"
)

// VirtualRootID is the synthetic node every real move is ultimately
// parented under, directly or indirectly.
const VirtualRootID = "virtual_root"

// Color mirrors the "white"|"black" string used on the wire.
type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// Node is one move in the tree, or the virtual root when ID == VirtualRootID.
type Node struct {
	ID       string
	ParentID string // empty only for the virtual root

	SAN        string
	UCI        string
	Ply        int
	MoveNumber int
	Color      Color
	FEN        string

	CommentBefore lang.Optional[string]
	CommentAfter  lang.Optional[string]
	NAGs          []int

	// MainChild is the node reached by continuing this line ("rank 0").
	// Variations holds every other child, ordered ascending by rank.
	MainChild  string
	Variations []string
}

// Tree is the in-memory form built by DBToTree and consumed by BuildPGN,
// BuildFENIndex and TreeToDBChanges.
type Tree struct {
	RootID    string
	ChapterID string
	Nodes     map[string]*Node

	Headers map[string]string
	Result  string
}

// NewTree returns an empty tree holding only the virtual root, set up at
// setupFEN (board.fen.Initial if empty).
func NewTree(setupFEN string) *Tree {
	if setupFEN == "" {
		setupFEN = fen.Initial
	}
	root := &Node{ID: VirtualRootID, SAN: "<root>", FEN: setupFEN}
	return &Tree{
		RootID:  VirtualRootID,
		Nodes:   map[string]*Node{VirtualRootID: root},
		Headers: map[string]string{},
	}
}

func (t *Tree) Root() *Node {
	return t.Nodes[t.RootID]
}
