package board

import (
	"fmt"

	"github.com/seekerror/stdlib/pkg/lang"
)

// Apply produces the successor BoardState from applying move to s. It does
// not check legality: the caller (the facade, always) is responsible for
// calling IsLegal first. Apply is a pure function of (s, move); it never
// mutates s.
//
// move.Type is never consulted: it is only ever set by movegen.go, while
// every real input path (ParseMove, and so the session/console) produces
// Type==Normal. Castling, en passant and a two-square pawn push are instead
// detected from the geometry of From/To and the piece/board state, so Apply
// behaves identically whether move came from movegen or from parsed
// algebraic notation.
func Apply(s *BoardState, move Move) (*BoardState, error) {
	mover := s.At(move.From)
	if mover.Piece == NoPiece {
		return nil, &IllegalMoveError{Move: move.String(), Msg: "no piece on from-square"}
	}

	isCastle := isCastleMove(mover, move)
	isEnPassant := isEnPassantMove(s, mover, move)
	isJump := isPawnJump(mover, move)
	isCapture := isEnPassant || s.At(move.To).Piece != NoPiece

	next := s.Clone()

	next.Remove(move.From)
	if isEnPassant {
		capturedSq, ok := move.To.Offset(0, -mover.Color.PawnDirection())
		if !ok {
			return nil, fmt.Errorf("invalid en passant move: '%v'", move)
		}
		next.Remove(capturedSq)
	}

	placed := mover
	if move.Promotion.IsValid() {
		placed = Occupant{Piece: move.Promotion, Color: mover.Color}
	}
	next.Put(move.To, placed)

	if isCastle {
		rank := mover.Color.BackRank()
		var rookFrom, rookTo Square
		if move.To.File() == FileG {
			rookFrom, rookTo = NewSquare(FileH, rank), NewSquare(FileF, rank)
		} else {
			rookFrom, rookTo = NewSquare(FileA, rank), NewSquare(FileD, rank)
		}
		rook := next.Remove(rookFrom)
		next.Put(rookTo, rook)
	}

	next.Castling = updateCastlingRights(s.Castling, move, mover)

	if isJump {
		epSq, _ := move.From.Offset(0, mover.Color.PawnDirection())
		next.EnPassant = lang.Some(epSq)
	} else {
		next.EnPassant = lang.Optional[Square]{}
	}

	isPawnMove := mover.Piece == Pawn
	if isPawnMove || isCapture {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}

	if s.Turn == Black {
		next.FullmoveNumber++
	}
	next.Turn = s.Turn.Opponent()

	return next, nil
}

// IsCapture reports whether move captures a piece when applied to state,
// including en passant, purely from board geometry: the piece on
// move.From and whether move.To is occupied or is a diagonal pawn move to
// an empty square (which can only be en passant).
func IsCapture(state *BoardState, move Move) bool {
	mover := state.At(move.From)
	return isEnPassantMove(state, mover, move) || state.At(move.To).Piece != NoPiece
}

func isCastleMove(mover Occupant, move Move) bool {
	return mover.Piece == King && fileDelta(move) == 2
}

func isEnPassantMove(s *BoardState, mover Occupant, move Move) bool {
	return mover.Piece == Pawn && move.From.File() != move.To.File() && s.At(move.To).Piece == NoPiece
}

func isPawnJump(mover Occupant, move Move) bool {
	return mover.Piece == Pawn && move.From.File() == move.To.File() && rankDelta(move) == 2
}

func fileDelta(move Move) int {
	d := move.To.File().V() - move.From.File().V()
	if d < 0 {
		return -d
	}
	return d
}

func rankDelta(move Move) int {
	d := move.To.Rank().V() - move.From.Rank().V()
	if d < 0 {
		return -d
	}
	return d
}

// updateCastlingRights applies the monotonic-loss rule: a king move clears
// both rights of its color; a rook move, or a capture landing on a rook's
// home square, clears that side's right.
func updateCastlingRights(c Castling, move Move, mover Occupant) Castling {
	if mover.Piece == King {
		if mover.Color == White {
			c &^= WhiteKingSideCastle | WhiteQueenSideCastle
		} else {
			c &^= BlackKingSideCastle | BlackQueenSideCastle
		}
	}
	if mover.Piece == Rook {
		c &^= rightForRookSquare(move.From, mover.Color)
	}
	c &^= rightForRookSquare(move.To, White)
	c &^= rightForRookSquare(move.To, Black)
	return c
}

func rightForRookSquare(sq Square, color Color) Castling {
	switch {
	case sq == A1 && color == White:
		return WhiteQueenSideCastle
	case sq == H1 && color == White:
		return WhiteKingSideCastle
	case sq == A8 && color == Black:
		return BlackQueenSideCastle
	case sq == H8 && color == Black:
		return BlackKingSideCastle
	default:
		return 0
	}
}
