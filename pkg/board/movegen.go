package board

// PseudoLegalMoves enumerates every candidate move for the side to move,
// without regard to whether it leaves that side's own king in check. The
// generator is pure over BoardState and never mutates it. Order is stable
// across runs for identical input, which perft relies on for reproducible
// divide output but does not otherwise depend on.
func PseudoLegalMoves(s *BoardState) []Move {
	var moves []Move
	turn := s.Turn

	for sq := ZeroSquare; sq < NumSquares; sq++ {
		o := s.At(sq)
		if o.Piece == NoPiece || o.Color != turn {
			continue
		}
		switch o.Piece {
		case Pawn:
			moves = append(moves, pawnMoves(s, sq, turn)...)
		case Knight:
			moves = append(moves, knightMoves(s, sq, turn)...)
		case Bishop:
			moves = append(moves, slideMoves(s, sq, turn, diagonalDirs[:])...)
		case Rook:
			moves = append(moves, slideMoves(s, sq, turn, orthogonalDirs[:])...)
		case Queen:
			moves = append(moves, slideMoves(s, sq, turn, diagonalDirs[:])...)
			moves = append(moves, slideMoves(s, sq, turn, orthogonalDirs[:])...)
		case King:
			moves = append(moves, kingMoves(s, sq, turn)...)
			moves = append(moves, castlingMoves(s, sq, turn)...)
		}
	}
	return moves
}

var promotionPieces = [4]Piece{Queen, Rook, Bishop, Knight}

func pawnMoves(s *BoardState, sq Square, turn Color) []Move {
	var moves []Move
	dir := turn.PawnDirection()
	startRank := Rank1 + 1
	lastRank := Rank8
	if turn == Black {
		startRank = Rank8 - 1
		lastRank = Rank1
	}

	addPawnTarget := func(to Square, mt MoveType, capture Piece) {
		if to.Rank() == lastRank {
			for _, p := range promotionPieces {
				t := Promotion
				if mt == Capture {
					t = CapturePromotion
				}
				moves = append(moves, Move{Type: t, From: sq, To: to, Promotion: p, Capture: capture})
			}
			return
		}
		moves = append(moves, Move{Type: mt, From: sq, To: to, Capture: capture})
	}

	// One square forward.
	if one, ok := sq.Offset(0, dir); ok {
		if s.At(one).Piece == NoPiece {
			addPawnTarget(one, Push, NoPiece)

			// Two squares forward from the starting rank.
			if sq.Rank() == startRank {
				if two, ok := sq.Offset(0, 2*dir); ok && s.At(two).Piece == NoPiece {
					moves = append(moves, Move{Type: Jump, From: sq, To: two})
				}
			}
		}
	}

	// Diagonal captures.
	for _, df := range []int{-1, 1} {
		to, ok := sq.Offset(df, dir)
		if !ok {
			continue
		}
		target := s.At(to)
		if target.Piece != NoPiece && target.Color != turn {
			addPawnTarget(to, Capture, target.Piece)
			continue
		}
		if ep, ok := s.EnPassant.V(); ok && ep == to {
			moves = append(moves, Move{Type: EnPassant, From: sq, To: to, Capture: Pawn})
		}
	}

	return moves
}

func knightMoves(s *BoardState, sq Square, turn Color) []Move {
	var moves []Move
	for _, d := range knightOffsets {
		to, ok := sq.Offset(d[0], d[1])
		if !ok {
			continue
		}
		target := s.At(to)
		if target.Piece == NoPiece {
			moves = append(moves, Move{Type: Normal, From: sq, To: to})
		} else if target.Color != turn {
			moves = append(moves, Move{Type: Capture, From: sq, To: to, Capture: target.Piece})
		}
	}
	return moves
}

func kingMoves(s *BoardState, sq Square, turn Color) []Move {
	var moves []Move
	for _, d := range kingOffsets {
		to, ok := sq.Offset(d[0], d[1])
		if !ok {
			continue
		}
		target := s.At(to)
		if target.Piece == NoPiece {
			moves = append(moves, Move{Type: Normal, From: sq, To: to})
		} else if target.Color != turn {
			moves = append(moves, Move{Type: Capture, From: sq, To: to, Capture: target.Piece})
		}
	}
	return moves
}

func slideMoves(s *BoardState, sq Square, turn Color, dirs [][2]int) []Move {
	var moves []Move
	for _, d := range dirs {
		cur := sq
		for {
			to, ok := cur.Offset(d[0], d[1])
			if !ok {
				break
			}
			target := s.At(to)
			if target.Piece == NoPiece {
				moves = append(moves, Move{Type: Normal, From: sq, To: to})
				cur = to
				continue
			}
			if target.Color != turn {
				moves = append(moves, Move{Type: Capture, From: sq, To: to, Capture: target.Piece})
			}
			break
		}
	}
	return moves
}

// castlingMoves returns the (at most two) pseudo-legal castling moves for
// the king on sq. Castling requires: the side retains the right, the king
// is not currently in check, every square the king passes through
// (including the target) is not attacked by the opponent, and every square
// strictly between king and rook is empty. The queenside b-file square must
// additionally be empty but is not itself checked for attack.
func castlingMoves(s *BoardState, sq Square, turn Color) []Move {
	var moves []Move
	opp := turn.Opponent()
	rank := turn.BackRank()

	if IsAttackedBy(s, sq, opp) {
		return nil
	}

	kingSideRight, queenSideRight := WhiteKingSideCastle, WhiteQueenSideCastle
	if turn == Black {
		kingSideRight, queenSideRight = BlackKingSideCastle, BlackQueenSideCastle
	}

	if s.Castling.IsAllowed(kingSideRight) {
		f1, r1 := NewSquare(FileF, rank), NewSquare(FileG, rank)
		if s.At(f1).Piece == NoPiece && s.At(r1).Piece == NoPiece &&
			!IsAttackedBy(s, f1, opp) && !IsAttackedBy(s, r1, opp) {
			moves = append(moves, Move{Type: KingSideCastle, From: sq, To: r1})
		}
	}
	if s.Castling.IsAllowed(queenSideRight) {
		d1, c1, b1 := NewSquare(FileD, rank), NewSquare(FileC, rank), NewSquare(FileB, rank)
		if s.At(d1).Piece == NoPiece && s.At(c1).Piece == NoPiece && s.At(b1).Piece == NoPiece &&
			!IsAttackedBy(s, d1, opp) && !IsAttackedBy(s, c1, opp) {
			moves = append(moves, Move{Type: QueenSideCastle, From: sq, To: c1})
		}
	}
	return moves
}
