package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catachess/chesscore/pkg/board"
)

func TestParseMoveRoundTrip(t *testing.T) {
	tests := []string{"e2e4", "a7a8q", "g1f3", "e7e8n"}
	for _, tt := range tests {
		m, err := board.ParseMove(tt)
		require.NoError(t, err)
		assert.Equal(t, tt, m.String())
	}
}

func TestParseMoveInvalid(t *testing.T) {
	tests := []string{"", "e2", "e2e4qq", "z2e4", "e2z4", "e7e8k"}
	for _, tt := range tests {
		_, err := board.ParseMove(tt)
		assert.Error(t, err, "expected error for %q", tt)
	}
}

func TestMoveEquals(t *testing.T) {
	a, _ := board.ParseMove("e7e8q")
	b, _ := board.ParseMove("e7e8q")
	c, _ := board.ParseMove("e7e8r")
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}
