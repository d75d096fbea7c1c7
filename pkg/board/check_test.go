package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catachess/chesscore/pkg/board"
	"github.com/catachess/chesscore/pkg/board/fen"
)

func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		fen  string
		want bool
	}{
		{"8/8/4k3/8/8/4K3/8/8 w - - 0 1", true},          // K vs K
		{"8/8/4k3/8/8/3NK3/8/8 w - - 0 1", true},         // K+N vs K
		{"8/8/4k3/8/8/3BK3/8/8 w - - 0 1", true},         // K+B vs K
		{"8/8/4kb2/8/8/3BK3/8/8 w - - 0 1", false},       // K+B vs K+B: two minors, not reported
		{"8/8/4kq2/8/8/3BK3/8/8 w - - 0 1", false},       // K+B vs K+Q
		{fen.Initial, false},
	}
	for _, tt := range tests {
		s, err := fen.Decode(tt.fen)
		require.NoError(t, err)
		assert.Equal(t, tt.want, board.HasInsufficientMaterial(s), "fen: %v", tt.fen)
	}
}

func TestHasFiftyMoveRule(t *testing.T) {
	s, err := fen.Decode("4k3/8/4K3/8/8/8/8/8 w - - 99 50")
	require.NoError(t, err)
	assert.False(t, board.HasFiftyMoveRule(s))

	s, err = fen.Decode("4k3/8/4K3/8/8/8/8/8 w - - 100 50")
	require.NoError(t, err)
	assert.True(t, board.HasFiftyMoveRule(s))
}

func TestGivesCheck(t *testing.T) {
	s, err := fen.Decode("4k3/8/4K3/8/8/8/8/R7 w - - 0 1")
	require.NoError(t, err)

	m, err := board.ParseMove("a1a8")
	require.NoError(t, err)
	assert.True(t, board.GivesCheck(s, m))
}
