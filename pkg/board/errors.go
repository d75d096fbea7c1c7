package board

import "fmt"

// FENParseError reports a malformed FEN field: wrong piece-placement arity,
// an out-of-range numeric field, or any other deviation from the six-field
// format.
type FENParseError struct {
	Msg string
	FEN string
}

func (e *FENParseError) Error() string {
	return fmt.Sprintf("invalid fen '%v': %v", e.FEN, e.Msg)
}

// InvalidSquareError reports algebraic notation that is out of range or the
// wrong length.
type InvalidSquareError struct {
	Ref string
}

func (e *InvalidSquareError) Error() string {
	return fmt.Sprintf("invalid square: '%v'", e.Ref)
}

// UCIParseError reports a malformed UCI move string: wrong length or a bad
// promotion letter.
type UCIParseError struct {
	Msg string
	UCI string
}

func (e *UCIParseError) Error() string {
	return fmt.Sprintf("invalid uci move '%v': %v", e.UCI, e.Msg)
}

// IllegalMoveError reports that a move failed the pseudo-legal membership
// check or left the moving side's own king in check.
type IllegalMoveError struct {
	Msg  string
	Move string
}

func (e *IllegalMoveError) Error() string {
	if e.Move == "" {
		return fmt.Sprintf("illegal move: %v", e.Msg)
	}
	return fmt.Sprintf("illegal move '%v': %v", e.Move, e.Msg)
}

// KingInCheckError is the specialization of IllegalMoveError for the case
// where the only violation is "this leaves the mover's own king in check".
type KingInCheckError struct {
	Move string
}

func (e *KingInCheckError) Error() string {
	return fmt.Sprintf("illegal move '%v': leaves own king in check", e.Move)
}

// InvalidPositionError reports a structural impossibility discovered after
// a position was otherwise successfully parsed, such as two kings of the
// same color.
type InvalidPositionError struct {
	Msg string
}

func (e *InvalidPositionError) Error() string {
	return fmt.Sprintf("invalid position: %v", e.Msg)
}
