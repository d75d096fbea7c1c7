package nodetree_test

import (
	"testing"

	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catachess/chesscore/pkg/board/fen"
	"github.com/catachess/chesscore/pkg/nodetree"
)

func sampleRows() []nodetree.VariationRow {
	return []nodetree.VariationRow{
		{ID: "m1", ChapterID: "c1", MoveNumber: 1, Color: "white", SAN: "e4", UCI: "e2e4", FEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", Rank: 0, NextID: lang.Some("m2")},
		{ID: "m2", ParentID: lang.Some("m1"), MoveNumber: 1, Color: "black", SAN: "e5", UCI: "e7e5", FEN: "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2", Rank: 0},
		{ID: "v1", ParentID: lang.Some("m1"), MoveNumber: 1, Color: "black", SAN: "c5", UCI: "c7c5", FEN: "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2", Rank: 1},
	}
}

func TestDBToTreeBuildsStructure(t *testing.T) {
	tree, err := nodetree.DBToTree(sampleRows(), nil, nil, "")
	require.NoError(t, err)

	root := tree.Root()
	require.Equal(t, "m1", root.MainChild)

	m1 := tree.Nodes["m1"]
	assert.Equal(t, "m2", m1.MainChild)
	assert.Equal(t, []string{"v1"}, m1.Variations)
	assert.Equal(t, 1, m1.Ply)

	m2 := tree.Nodes["m2"]
	assert.Equal(t, 2, m2.Ply)
}

func TestDBToTreeMissingParentErrors(t *testing.T) {
	rows := []nodetree.VariationRow{
		{ID: "orphan", ParentID: lang.Some("nowhere"), MoveNumber: 1, Color: "white", SAN: "e4", UCI: "e2e4", FEN: "x"},
	}
	_, err := nodetree.DBToTree(rows, nil, nil, "")
	assert.Error(t, err)
}

func TestDBToTreeMissingSANErrors(t *testing.T) {
	rows := []nodetree.VariationRow{{ID: "m1", MoveNumber: 1, Color: "white", UCI: "e2e4", FEN: "x"}}
	_, err := nodetree.DBToTree(rows, nil, nil, "")
	assert.Error(t, err)
}

func TestDBToTreeAnnotationsAttach(t *testing.T) {
	annotations := []nodetree.AnnotationRow{
		{ID: "a1", MoveID: "m1", NAG: lang.Some("!")},
		{ID: "a2", MoveID: "m1", Text: lang.Some("a strong opening")},
	}
	tree, err := nodetree.DBToTree(sampleRows(), annotations, nil, "")
	require.NoError(t, err)

	m1 := tree.Nodes["m1"]
	require.Len(t, m1.NAGs, 1)
	assert.Equal(t, 1, m1.NAGs[0])
	comment, ok := m1.CommentAfter.V()
	require.True(t, ok)
	assert.Equal(t, "a strong opening", comment)
}

func TestDBToTreeChapterPopulatesHeaders(t *testing.T) {
	chapter := &nodetree.ChapterRow{White: "Alice", Black: "Bob", Event: "Open", Date: "2026.07.29", Result: "1-0"}
	tree, err := nodetree.DBToTree(sampleRows(), nil, chapter, "")
	require.NoError(t, err)

	assert.Equal(t, "Alice", tree.Headers["White"])
	assert.Equal(t, "1-0", tree.Result)
}

func TestTreeToDBChangesIdempotentOnUnchangedInput(t *testing.T) {
	rows := sampleRows()
	tree, err := nodetree.DBToTree(rows, nil, nil, "")
	require.NoError(t, err)

	vc, ac, err := nodetree.TreeToDBChanges(tree, rows, nil)
	require.NoError(t, err)

	assert.Empty(t, vc.Added)
	assert.Empty(t, vc.Updated)
	assert.Empty(t, vc.Deleted)
	assert.Empty(t, ac.Added)
	assert.Empty(t, ac.Updated)
	assert.Empty(t, ac.Deleted)
}

func TestTreeToDBChangesDetectsNewNode(t *testing.T) {
	rows := sampleRows()
	tree, err := nodetree.DBToTree(rows, nil, nil, "")
	require.NoError(t, err)

	// simulate the caller not yet persisting "v1": it should show as added.
	existing := rows[:2]
	vc, _, err := nodetree.TreeToDBChanges(tree, existing, nil)
	require.NoError(t, err)
	require.Len(t, vc.Added, 1)
	assert.Equal(t, "v1", vc.Added[0].ID)
}

func TestTreeToDBChangesDetectsDeletedNode(t *testing.T) {
	rows := sampleRows()
	tree, err := nodetree.DBToTree(rows[:2], nil, nil, "")
	require.NoError(t, err)

	vc, _, err := nodetree.TreeToDBChanges(tree, rows, nil)
	require.NoError(t, err)
	require.Len(t, vc.Deleted, 1)
	assert.Equal(t, "v1", vc.Deleted[0].ID)
}

func TestBuildFENIndexReplaysAndMatches(t *testing.T) {
	tree, err := nodetree.DBToTree(sampleRows(), nil, nil, fen.Initial)
	require.NoError(t, err)

	idx, err := nodetree.BuildFENIndex(tree)
	require.NoError(t, err)

	assert.Equal(t, tree.Nodes["m1"].FEN, idx["m1"])
	assert.Equal(t, tree.Nodes["m2"].FEN, idx["m2"])
	assert.Equal(t, tree.Nodes["v1"].FEN, idx["v1"])
	_, hasRoot := idx[nodetree.VirtualRootID]
	assert.False(t, hasRoot)
}

func TestBuildFENIndexDetectsMismatch(t *testing.T) {
	rows := sampleRows()
	rows[0].FEN = "not-the-real-fen"
	tree, err := nodetree.DBToTree(rows, nil, nil, fen.Initial)
	require.NoError(t, err)

	_, err = nodetree.BuildFENIndex(tree)
	assert.Error(t, err)
}

func TestBuildPGNRendersMainlineAndSideline(t *testing.T) {
	tree, err := nodetree.DBToTree(sampleRows(), nil, nil, "")
	require.NoError(t, err)

	out, err := nodetree.BuildPGN(tree)
	require.NoError(t, err)
	assert.Contains(t, out, "1. e4 e5 (1... c5)")
}

func TestTreeJSONRoundTrip(t *testing.T) {
	tree, err := nodetree.DBToTree(sampleRows(), nil, nil, fen.Initial)
	require.NoError(t, err)

	data, err := tree.MarshalJSON()
	require.NoError(t, err)

	var out nodetree.Tree
	require.NoError(t, out.UnmarshalJSON(data))

	assert.Equal(t, tree.RootID, out.RootID)
	assert.Equal(t, len(tree.Nodes), len(out.Nodes))
	assert.Equal(t, tree.Nodes["m1"].SAN, out.Nodes["m1"].SAN)
}
