package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catachess/chesscore/pkg/board"
	"github.com/catachess/chesscore/pkg/board/fen"
	"github.com/catachess/chesscore/pkg/session"
)

func mustMove(t *testing.T, uci string) board.Move {
	t.Helper()
	m, err := board.ParseMove(uci)
	require.NoError(t, err)
	return m
}

// S1: start position; submit_move("e2e4") succeeds, FEN becomes the known
// post-e4 FEN, PGN contains "1. e4".
func TestScenarioS1OpeningSubmit(t *testing.T) {
	s, err := session.New("s1", session.StandardGame, "")
	require.NoError(t, err)

	require.NoError(t, s.SubmitMove(context.Background(), mustMove(t, "e2e4")))

	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", fen.Encode(s.BoardState()))
	assert.Contains(t, s.PGN(), "1. e4")
}

// S2: fool's mate. After f2f3 e7e5 g2g4 d8h4, checkmate, Black wins, PGN
// result is 0-1.
func TestScenarioS2FoolsMate(t *testing.T) {
	s, err := session.New("s2", session.StandardGame, "")
	require.NoError(t, err)

	ctx := context.Background()
	for _, uci := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		require.NoError(t, s.SubmitMove(ctx, mustMove(t, uci)))
	}

	assert.True(t, s.IsOver())
	result, reason := s.Result()
	assert.Equal(t, board.BlackWins, result)
	assert.Equal(t, board.ReasonCheckmate, reason)
	assert.Contains(t, s.PGN(), "0-1")
}

// S3: kingside castling: e1g1 is legal and renders as O-O.
func TestScenarioS3KingsideCastle(t *testing.T) {
	start, err := fen.Decode("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQK2R w KQkq - 0 1")
	require.NoError(t, err)

	s, err := session.New("s3", session.StandardGame, fen.Encode(start))
	require.NoError(t, err)

	require.NoError(t, s.SubmitMove(context.Background(), mustMove(t, "e1g1")))
	assert.Equal(t, board.Rook, s.BoardState().At(5).Piece)
	assert.Contains(t, s.PGN(), "O-O")
}

func TestSubmitMoveIllegalLeavesSessionUnchanged(t *testing.T) {
	s, err := session.New("s4", session.StandardGame, "")
	require.NoError(t, err)

	before := fen.Encode(s.BoardState())
	beforePGN := s.PGN()

	err = s.SubmitMove(context.Background(), mustMove(t, "e2e5"))
	assert.Error(t, err)
	assert.Equal(t, before, fen.Encode(s.BoardState()))
	assert.Equal(t, beforePGN, s.PGN())
}

func TestTakebackRestoresPriorState(t *testing.T) {
	s, err := session.New("s5", session.Puzzle, "")
	require.NoError(t, err)

	before := fen.Encode(s.BoardState())
	require.NoError(t, s.SubmitMove(context.Background(), mustMove(t, "e2e4")))
	require.NoError(t, s.Takeback())

	assert.Equal(t, before, fen.Encode(s.BoardState()))
	assert.False(t, s.IsOver())
}

func TestTakebackForbiddenUnderStandardGame(t *testing.T) {
	s, err := session.New("s6", session.StandardGame, "")
	require.NoError(t, err)
	require.NoError(t, s.SubmitMove(context.Background(), mustMove(t, "e2e4")))

	assert.Error(t, s.Takeback())
}

func TestVariationsForbiddenUnderStandardGame(t *testing.T) {
	s, err := session.New("s7", session.StandardGame, "")
	require.NoError(t, err)
	require.NoError(t, s.SubmitMove(context.Background(), mustMove(t, "e2e4")))

	assert.Error(t, s.StartVariation())
}

// S7-equivalent at the session layer: Analysis policy allows a variation
// that replaces a move, producing "(1... c5)" in the rendered PGN.
func TestAnalysisPolicyVariationRendersAsSideline(t *testing.T) {
	s, err := session.New("s8", session.Analysis, "")
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.SubmitMove(ctx, mustMove(t, "e2e4")))
	require.NoError(t, s.SubmitMove(ctx, mustMove(t, "e7e5")))

	require.NoError(t, s.StartVariation())
	require.NoError(t, s.SubmitMove(ctx, mustMove(t, "c7c5")))
	require.NoError(t, s.EndVariation())

	assert.Contains(t, s.PGN(), "1. e4 e5 (1... c5)")
}

func TestResetReinstallsStartingPosition(t *testing.T) {
	s, err := session.New("s9", session.Analysis, "")
	require.NoError(t, err)
	require.NoError(t, s.SubmitMove(context.Background(), mustMove(t, "e2e4")))

	require.NoError(t, s.Reset(""))

	assert.Equal(t, fen.Initial, fen.Encode(s.BoardState()))
	assert.NotContains(t, s.PGN(), "e4")
}

func TestRepetitionKeyIsFENShaped(t *testing.T) {
	s, err := session.New("s10", session.StandardGame, "")
	require.NoError(t, err)
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -", s.RepetitionKey())
}
