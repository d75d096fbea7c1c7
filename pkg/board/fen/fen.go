// Package fen contains utilities for reading and writing positions in
// Forsyth-Edwards Notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/catachess/chesscore/pkg/board"
)

const (
	// Initial is the FEN of the standard chess starting position.
	Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// Decode parses a FEN string into a BoardState. It accepts exactly six
// whitespace-separated fields and performs no plausibility validation beyond
// field shape, per the codec's documented scope: two kings of the same
// color or pawns on the back rank are accepted here and only rejected, if
// at all, by the rule engine that consumes the resulting state.
func Decode(f string) (*board.BoardState, error) {
	parts := strings.Fields(strings.TrimSpace(f))
	if len(parts) != 6 {
		return nil, &board.FENParseError{FEN: f, Msg: fmt.Sprintf("expected 6 fields, got %d", len(parts))}
	}

	s := &board.BoardState{}

	if err := decodePlacement(s, parts[0], f); err != nil {
		return nil, err
	}

	turn, ok := parseColor(parts[1])
	if !ok {
		return nil, &board.FENParseError{FEN: f, Msg: fmt.Sprintf("invalid active color: '%v'", parts[1])}
	}
	s.Turn = turn

	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, &board.FENParseError{FEN: f, Msg: fmt.Sprintf("invalid castling availability: '%v'", parts[2])}
	}
	s.Castling = castling

	if parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return nil, &board.FENParseError{FEN: f, Msg: fmt.Sprintf("invalid en passant square: '%v'", parts[3])}
		}
		s.EnPassant = lang.Some(sq)
	}

	half, err := strconv.Atoi(parts[4])
	if err != nil || half < 0 {
		return nil, &board.FENParseError{FEN: f, Msg: fmt.Sprintf("invalid halfmove clock: '%v'", parts[4])}
	}
	s.HalfmoveClock = half

	full, err := strconv.Atoi(parts[5])
	if err != nil || full < 1 {
		return nil, &board.FENParseError{FEN: f, Msg: fmt.Sprintf("invalid fullmove number: '%v'", parts[5])}
	}
	s.FullmoveNumber = full

	return s, nil
}

func decodePlacement(s *board.BoardState, placement, f string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return &board.FENParseError{FEN: f, Msg: fmt.Sprintf("expected 8 ranks, got %d", len(ranks))}
	}

	// Ranks are listed from rank 8 down to rank 1.
	for i, rankStr := range ranks {
		rank := board.Rank(7 - i)
		file := 0
		for _, r := range rankStr {
			switch {
			case unicode.IsDigit(r):
				n := int(r - '0')
				if n < 1 || n > 8 {
					return &board.FENParseError{FEN: f, Msg: fmt.Sprintf("invalid empty-square run '%v' in rank '%v'", string(r), rankStr)}
				}
				file += n

			default:
				c, p, ok := parsePiece(r)
				if !ok {
					return &board.FENParseError{FEN: f, Msg: fmt.Sprintf("invalid piece '%v' in rank '%v'", string(r), rankStr)}
				}
				if file >= 8 {
					return &board.FENParseError{FEN: f, Msg: fmt.Sprintf("rank '%v' has more than 8 files", rankStr)}
				}
				s.Put(board.NewSquare(board.File(file), rank), board.Occupant{Piece: p, Color: c})
				file++
			}
		}
		if file != 8 {
			return &board.FENParseError{FEN: f, Msg: fmt.Sprintf("rank '%v' does not total 8 files", rankStr)}
		}
	}
	return nil
}

// Encode renders a BoardState as a FEN string, reproducing the canonical
// form byte-for-byte for states that originated from Decode.
func Encode(s *board.BoardState) string {
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		rank := board.Rank(7 - i)
		blanks := 0
		for file := board.ZeroFile; file < board.NumFiles; file++ {
			o := s.At(board.NewSquare(file, rank))
			if o.Piece == board.NoPiece {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteRune(printPiece(o.Color, o.Piece))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if i < 7 {
			sb.WriteString("/")
		}
	}

	ep := "-"
	if sq, ok := s.EnPassant.V(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%v %v %v %v %d %d", sb.String(), printColor(s.Turn), printCastling(s.Castling), ep, s.HalfmoveClock, s.FullmoveNumber)
}

func parseCastling(str string) (board.Castling, bool) {
	if str == "-" {
		return 0, true
	}
	var ret board.Castling
	for _, r := range str {
		switch r {
		case 'K':
			ret |= board.WhiteKingSideCastle
		case 'Q':
			ret |= board.WhiteQueenSideCastle
		case 'k':
			ret |= board.BlackKingSideCastle
		case 'q':
			ret |= board.BlackQueenSideCastle
		default:
			return 0, false
		}
	}
	return ret, true
}

func printCastling(c board.Castling) string {
	return c.String()
}

func parseColor(str string) (board.Color, bool) {
	switch str {
	case "w":
		return board.White, true
	case "b":
		return board.Black, true
	default:
		return 0, false
	}
}

func printColor(c board.Color) string {
	return c.String()
}

func parsePiece(r rune) (board.Color, board.Piece, bool) {
	p, ok := board.ParsePiece(r)
	if !ok {
		return 0, 0, false
	}
	if unicode.IsUpper(r) {
		return board.White, p, true
	}
	return board.Black, p, true
}

func printPiece(c board.Color, p board.Piece) rune {
	r := []rune(p.String())[0]
	if c == board.White {
		return unicode.ToUpper(r)
	}
	return r
}
