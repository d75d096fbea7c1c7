package board

// knightOffsets are the eight (file, rank) deltas a knight can move by.
var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// kingOffsets are the eight adjacent (file, rank) deltas.
var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// diagonalDirs are the four bishop/queen ray directions.
var diagonalDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// orthogonalDirs are the four rook/queen ray directions.
var orthogonalDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// IsAttackedBy returns true iff any piece of byColor could capture to sq
// under normal movement rules, ignoring whether the attacker is itself
// pinned (discovered checks on the attacker are not considered).
func IsAttackedBy(s *BoardState, sq Square, byColor Color) bool {
	for _, d := range knightOffsets {
		if t, ok := sq.Offset(d[0], d[1]); ok {
			if o := s.At(t); o.Piece == Knight && o.Color == byColor {
				return true
			}
		}
	}

	for _, d := range kingOffsets {
		if t, ok := sq.Offset(d[0], d[1]); ok {
			if o := s.At(t); o.Piece == King && o.Color == byColor {
				return true
			}
		}
	}

	for _, d := range diagonalDirs {
		if slideHitsAttacker(s, sq, d, byColor, Bishop, Queen) {
			return true
		}
	}
	for _, d := range orthogonalDirs {
		if slideHitsAttacker(s, sq, d, byColor, Rook, Queen) {
			return true
		}
	}

	// Pawn attacks are asymmetric: a white pawn attacks the two squares one
	// rank *above* it, so to find a white attacker of sq we look one rank
	// *below* sq.
	if t, ok := sq.Offset(-1, -1); ok {
		if o := s.At(t); o.Piece == Pawn && o.Color == White {
			return true
		}
	}
	if t, ok := sq.Offset(1, -1); ok {
		if o := s.At(t); o.Piece == Pawn && o.Color == White {
			return true
		}
	}
	if t, ok := sq.Offset(-1, 1); ok {
		if o := s.At(t); o.Piece == Pawn && o.Color == Black {
			return true
		}
	}
	if t, ok := sq.Offset(1, 1); ok {
		if o := s.At(t); o.Piece == Pawn && o.Color == Black {
			return true
		}
	}

	return false
}

// slideHitsAttacker walks from sq along direction d and returns true if the
// first occupied square holds a byColor piece of either want1 or want2 type.
func slideHitsAttacker(s *BoardState, sq Square, d [2]int, byColor Color, want1, want2 Piece) bool {
	cur := sq
	for {
		t, ok := cur.Offset(d[0], d[1])
		if !ok {
			return false
		}
		o := s.At(t)
		if o.Piece == NoPiece {
			cur = t
			continue
		}
		return o.Color == byColor && (o.Piece == want1 || o.Piece == want2)
	}
}
