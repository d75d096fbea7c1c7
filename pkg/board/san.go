package board

import "strings"

// FormatSAN renders move in Standard Algebraic Notation. state is the
// position *before* move is applied. isCapture/isCheck/isCheckmate are
// supplied by the caller, which is assumed to have already established
// them; FormatSAN performs no legality check of its own.
func FormatSAN(state *BoardState, move Move, isCapture, isCheck, isCheckmate bool) string {
	mover := state.At(move.From)

	if isCastleMove(mover, move) {
		if move.To.File() == FileG {
			return appendCheckSuffix("O-O", isCheck, isCheckmate)
		}
		return appendCheckSuffix("O-O-O", isCheck, isCheckmate)
	}

	var sb strings.Builder
	if mover.Piece == Pawn {
		if isCapture {
			sb.WriteString(move.From.File().String())
		}
	} else {
		sb.WriteString(pieceLetter(mover.Piece))
		sb.WriteString(disambiguate(state, move, mover))
	}

	if isCapture {
		sb.WriteString("x")
	}
	sb.WriteString(move.To.String())

	if move.Promotion.IsValid() {
		sb.WriteString("=")
		sb.WriteString(pieceLetter(move.Promotion))
	}

	return appendCheckSuffix(sb.String(), isCheck, isCheckmate)
}

func appendCheckSuffix(san string, isCheck, isCheckmate bool) string {
	if isCheckmate {
		return san + "#"
	}
	if isCheck {
		return san + "+"
	}
	return san
}

func pieceLetter(p Piece) string {
	switch p {
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return ""
	}
}

// disambiguate returns the minimal prefix needed to distinguish move's
// origin from any other same-color, same-type piece that could legally
// reach move.To: nothing if unique, the file letter if the file alone
// disambiguates, else the rank digit if that alone disambiguates, else the
// full origin square.
func disambiguate(state *BoardState, move Move, mover Occupant) string {
	var sameFile, sameRank, any bool

	for _, m := range LegalMoves(state) {
		if m.To != move.To || m.From == move.From {
			continue
		}
		other := state.At(m.From)
		if other.Piece != mover.Piece || other.Color != mover.Color {
			continue
		}
		any = true
		if m.From.File() == move.From.File() {
			sameFile = true
		}
		if m.From.Rank() == move.From.Rank() {
			sameRank = true
		}
	}

	if !any {
		return ""
	}
	if !sameFile {
		return move.From.File().String()
	}
	if !sameRank {
		return move.From.Rank().String()
	}
	return move.From.String()
}
