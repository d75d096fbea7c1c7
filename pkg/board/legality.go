package board

// IsLegal returns true iff move appears in the pseudo-legal moves for s and,
// after applying it, the side that just moved is not attacked on its king's
// square.
func IsLegal(s *BoardState, move Move) bool {
	found := false
	for _, m := range PseudoLegalMoves(s) {
		if m.Equals(move) {
			found = true
			break
		}
	}
	if !found {
		return false
	}

	next, err := Apply(s, move)
	if err != nil {
		return false
	}
	king, ok := next.FindKing(s.Turn)
	if !ok {
		// No king to protect; treat as legal since safety cannot be evaluated.
		return true
	}
	return !IsAttackedBy(next, king, s.Turn.Opponent())
}

// LegalMoves returns every pseudo-legal move that also satisfies IsLegal.
func LegalMoves(s *BoardState) []Move {
	var legal []Move
	for _, m := range PseudoLegalMoves(s) {
		next, err := Apply(s, m)
		if err != nil {
			continue
		}
		king, ok := next.FindKing(s.Turn)
		if !ok || !IsAttackedBy(next, king, s.Turn.Opponent()) {
			legal = append(legal, m)
		}
	}
	return legal
}
