package board

import (
	"fmt"

	"github.com/seekerror/stdlib/pkg/lang"
)

// Occupant is the content of a single square: either empty (Piece == NoPiece)
// or a colored piece.
type Occupant struct {
	Piece Piece
	Color Color
}

var Empty = Occupant{Piece: NoPiece}

// BoardState is the complete, self-contained state of a chess position: the
// 64-square board plus the side to move, castling rights, en passant target
// and the two move counters needed for the 50-move rule and move numbering.
// It has no notion of history; repetition detection is left to a caller that
// tracks a sequence of states, per the session's RepetitionKey hook.
type BoardState struct {
	Squares        [64]Occupant
	Turn           Color
	Castling       Castling
	EnPassant      lang.Optional[Square] // capture target square, if the last move was a 2-square pawn push
	HalfmoveClock  int                   // plies since the last pawn move or capture
	FullmoveNumber int                   // starts at 1, increments after Black moves
}

// NewBoardState returns the standard chess starting position.
func NewBoardState() *BoardState {
	s := &BoardState{
		Turn:           White,
		Castling:       FullCastingRights,
		FullmoveNumber: 1,
	}

	back := [8]Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := 0; f < 8; f++ {
		s.Put(NewSquare(File(f), Rank1), Occupant{Piece: back[f], Color: White})
		s.Put(NewSquare(File(f), Rank2), Occupant{Piece: Pawn, Color: White})
		s.Put(NewSquare(File(f), Rank7), Occupant{Piece: Pawn, Color: Black})
		s.Put(NewSquare(File(f), Rank8), Occupant{Piece: back[f], Color: Black})
	}
	return s
}

func (s *BoardState) At(sq Square) Occupant {
	return s.Squares[sq]
}

func (s *BoardState) Put(sq Square, o Occupant) {
	s.Squares[sq] = o
}

func (s *BoardState) Remove(sq Square) Occupant {
	o := s.Squares[sq]
	s.Squares[sq] = Empty
	return o
}

// Clone returns an independent deep copy. BoardState is exclusively mutated
// through Clone+Put so Apply can offer strong exception safety: a rejected
// move never touches the caller's original state.
func (s *BoardState) Clone() *BoardState {
	c := *s
	return &c
}

// FindKing returns the square of the given color's king. The second return
// value is false if no such king is on the board, which NewBoardState never
// produces but a hand-crafted or FEN-loaded state might.
func (s *BoardState) FindKing(c Color) (Square, bool) {
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		o := s.Squares[sq]
		if o.Piece == King && o.Color == c {
			return sq, true
		}
	}
	return 0, false
}

func (s *BoardState) String() string {
	return fmt.Sprintf("BoardState{turn=%v, castling=%v, ep=%v, halfmove=%d, fullmove=%d}",
		s.Turn, s.Castling, s.EnPassant, s.HalfmoveClock, s.FullmoveNumber)
}
