package board

// InCheck returns true iff color's king is attacked by the opponent. A
// position with no king of that color (partial test positions) is treated
// as not in check.
func InCheck(s *BoardState, color Color) bool {
	king, ok := s.FindKing(color)
	if !ok {
		return false
	}
	return IsAttackedBy(s, king, color.Opponent())
}

// GivesCheck reports whether applying move to s would place the opponent in
// check. It is a convenience so callers do not have to re-derive the
// post-apply state themselves.
func GivesCheck(s *BoardState, move Move) bool {
	next, err := Apply(s, move)
	if err != nil {
		return false
	}
	return InCheck(next, next.Turn)
}

// IsCheckmate reports check with no legal reply.
func IsCheckmate(s *BoardState) bool {
	return InCheck(s, s.Turn) && len(LegalMoves(s)) == 0
}

// IsStalemate reports no check and no legal reply.
func IsStalemate(s *BoardState) bool {
	return !InCheck(s, s.Turn) && len(LegalMoves(s)) == 0
}

// HasInsufficientMaterial reports the conservative set of drawn-by-material
// combinations: king vs king, and king+minor vs king only. Two minors on
// the board at once (K+B vs K+B, K+N vs K+N, K+B vs K+N, ...) are
// conservatively reported as not insufficient, matching the ground-truth
// original's literal behavior rather than refining K+B vs K+B by bishop
// square color; see the decision record for this open question.
func HasInsufficientMaterial(s *BoardState) bool {
	var minors [2]int // indexed by Color: count of bishops+knights
	var majorsOrPawns [2]int

	for sq := ZeroSquare; sq < NumSquares; sq++ {
		o := s.At(sq)
		switch o.Piece {
		case NoPiece, King:
			// no material contribution
		case Bishop, Knight:
			minors[o.Color]++
		default:
			majorsOrPawns[o.Color]++
		}
	}

	if majorsOrPawns[White] > 0 || majorsOrPawns[Black] > 0 {
		return false
	}
	total := minors[White] + minors[Black]
	if total == 0 {
		return true // K vs K
	}
	if total == 1 {
		return true // K+minor vs K
	}
	return false
}

// HasFiftyMoveRule reports the 50-move (100-halfmove) no-progress draw.
func HasFiftyMoveRule(s *BoardState) bool {
	return s.HalfmoveClock >= 100
}

// IsGameOver reports any of the core-detected terminal conditions.
func IsGameOver(s *BoardState) bool {
	return IsCheckmate(s) || IsStalemate(s) || HasInsufficientMaterial(s) || HasFiftyMoveRule(s)
}
