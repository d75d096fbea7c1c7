package board_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/catachess/chesscore/pkg/board"
	"github.com/catachess/chesscore/pkg/board/fen"
)

func TestPerftStartingPosition(t *testing.T) {
	s, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	tests := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, board.Perft(s, tt.depth), "depth %d", tt.depth)
	}
}

func TestPerftDepth5Slow(t *testing.T) {
	if testing.Short() {
		t.Skip("slow perft test")
	}
	s, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	require.Equal(t, uint64(4865609), board.Perft(s, 5))
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	s, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	div := board.PerftDivide(s, 3)
	var sum uint64
	for _, c := range div {
		sum += c
	}
	require.Equal(t, board.Perft(s, 3), sum)
	require.Len(t, div, 20)
}
