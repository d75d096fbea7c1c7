package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catachess/chesscore/pkg/board"
	"github.com/catachess/chesscore/pkg/board/fen"
)

func TestFormatSANBasicMove(t *testing.T) {
	s, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	m, err := board.ParseMove("g1f3")
	require.NoError(t, err)
	assert.Equal(t, "Nf3", board.FormatSAN(s, m, false, false, false))
}

func TestFormatSANPawnCaptureIncludesFile(t *testing.T) {
	s, err := fen.Decode("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2")
	require.NoError(t, err)

	m, err := board.ParseMove("e4d5")
	require.NoError(t, err)
	assert.Equal(t, "exd5", board.FormatSAN(s, m, true, false, false))
}

func TestFormatSANDisambiguationByFile(t *testing.T) {
	// Two white knights (b1, g1) can both reach nowhere common normally; use
	// a constructed position where two rooks on the same rank (a1, h1, with
	// the king off the back rank) can both reach d1, disambiguated by file.
	s, err := fen.Decode("4k3/8/8/8/8/8/4K3/R6R w - - 0 1")
	require.NoError(t, err)

	m, err := board.ParseMove("a1d1")
	require.NoError(t, err)
	assert.Equal(t, "Rad1", board.FormatSAN(s, m, false, false, false))
}

func TestFormatSANCheckAndMateSuffix(t *testing.T) {
	s, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	m, err := board.ParseMove("g1f3")
	require.NoError(t, err)
	assert.Equal(t, "Nf3+", board.FormatSAN(s, m, false, true, false))
	assert.Equal(t, "Nf3#", board.FormatSAN(s, m, false, false, true))
}

func TestFormatSANPromotion(t *testing.T) {
	s, err := fen.Decode("8/P3k3/8/8/8/8/4K3/8 w - - 0 1")
	require.NoError(t, err)

	m, err := board.ParseMove("a7a8q")
	require.NoError(t, err)
	assert.Equal(t, "a8=Q", board.FormatSAN(s, m, false, false, false))
}
