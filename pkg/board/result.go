package board

// Result represents the result of a game, if any.
type Result uint8

const (
	Undecided Result = iota
	WhiteWins
	BlackWins
	Draw
)

func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// Reason names why a game reached its Result. Threefold repetition and
// resignation/agreement are recognized values but are never produced by
// GetGameResult: the core does not track repetition or accept outside
// agreement, per the documented external-termination boundary.
type Reason string

const (
	ReasonNone         Reason = ""
	ReasonCheckmate    Reason = "checkmate"
	ReasonStalemate    Reason = "stalemate"
	ReasonInsufficient Reason = "insufficient_material"
	ReasonFiftyMove    Reason = "fifty_move_rule"
	ReasonThreefold    Reason = "threefold_repetition"
	ReasonResignation  Reason = "resignation"
	ReasonAgreement    Reason = "agreement"
)

// GetGameResult evaluates the core-detectable terminal conditions and
// returns the result and the reason it was reached. In-progress games
// return (Undecided, ReasonNone).
func GetGameResult(s *BoardState) (Result, Reason) {
	if IsCheckmate(s) {
		if s.Turn == White {
			return BlackWins, ReasonCheckmate
		}
		return WhiteWins, ReasonCheckmate
	}
	if IsStalemate(s) {
		return Draw, ReasonStalemate
	}
	if HasInsufficientMaterial(s) {
		return Draw, ReasonInsufficient
	}
	if HasFiftyMoveRule(s) {
		return Draw, ReasonFiftyMove
	}
	return Undecided, ReasonNone
}
