package session

import (
	"context"
	"strings"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"

	"github.com/catachess/chesscore/pkg/board"
	"github.com/catachess/chesscore/pkg/board/fen"
	"github.com/catachess/chesscore/pkg/pgn"
)

// historyEntry is one applied move together with the state it was applied
// from, so a takeback can restore it exactly.
type historyEntry struct {
	move     board.Move
	preState *board.BoardState
}

// line is one line of play: the position reached so far along it and the
// history of moves that produced it. A variation is a second, independent
// line branching from a position inside its parent line, not a mutation
// of the parent's own state.
type line struct {
	state   *board.BoardState
	history []historyEntry
}

// Session owns a single live line of play, a PGN writer and, when its
// policy allows variations, a stack of branched lines. SubmitMove is the
// only code path that advances a line's state; Takeback and Reset only
// put back an earlier or starting position, and every other accessor
// reads a snapshot.
type Session struct {
	id     string
	policy GamePolicy
	writer pgn.Writer

	lines []*line

	over   bool
	result board.Result
	reason board.Reason
}

// New creates a session at the standard starting position (or startFEN, if
// non-empty) under the given policy. Variation-capable policies get a
// pgn.VariationWriter; others get a pgn.MainlineWriter.
func New(id string, policy GamePolicy, startFEN string) (*Session, error) {
	if startFEN == "" {
		startFEN = fen.Initial
	}
	state, err := fen.Decode(startFEN)
	if err != nil {
		return nil, err
	}

	var w pgn.Writer
	if policy.AllowVariations {
		w = pgn.NewVariationWriter()
	} else {
		w = pgn.NewMainlineWriter()
	}

	return &Session{id: id, policy: policy, writer: w, lines: []*line{{state: state}}}, nil
}

func (s *Session) ID() string { return s.id }

func (s *Session) top() *line { return s.lines[len(s.lines)-1] }

// BoardState returns the current position of whichever line is active:
// the main line, or the innermost open variation. Callers must not mutate
// the returned value.
func (s *Session) BoardState() *board.BoardState { return s.top().state }

func (s *Session) IsOver() bool { return s.over }

func (s *Session) Result() (board.Result, board.Reason) { return s.result, s.reason }

// PGN renders the session's recorded game text.
func (s *Session) PGN() string { return s.writer.String() }

// RepetitionKey returns a string identifying the position for external
// threefold-repetition tracking (board + turn + castling + en passant, no
// counters): the core does not detect repetition itself.
func (s *Session) RepetitionKey() string {
	fields := strings.Fields(fen.Encode(s.top().state))
	return strings.Join(fields[:4], " ")
}

// SubmitMove runs the validate -> apply -> record protocol against the
// active line. On any legality or policy failure, the session is left
// completely unchanged.
func (s *Session) SubmitMove(ctx context.Context, move board.Move) error {
	if contextx.IsCancelled(ctx) {
		return ctx.Err()
	}

	if s.over && s.policy.AutoEndOnMate {
		return &IllegalMoveError{Msg: "game is over"}
	}

	active := s.top()
	if !board.IsLegal(active.state, move) {
		return &IllegalMoveError{UCI: move.String(), Msg: "not a legal move in the current position"}
	}

	preState := active.state.Clone()
	next, err := board.Apply(active.state, move)
	if err != nil {
		// is_legal already verified legality; Apply failing here would be
		// an internal inconsistency, not a user-facing illegal move.
		return err
	}

	isCapture := board.IsCapture(active.state, move)
	isCheck := board.InCheck(next, next.Turn)
	isMate := isCheck && board.IsCheckmate(next)
	san := board.FormatSAN(preState, move, isCapture, isCheck, isMate)

	if s.policy.RecordPGN {
		s.writer.AddMove(move, preState, san)
	}
	active.history = append(active.history, historyEntry{move: move, preState: preState})
	active.state = next

	if len(s.lines) == 1 {
		// only the main line's terminal state is tracked; a variation
		// reaching mate does not end the session.
		result, reason := board.GetGameResult(active.state)
		if result != board.Undecided {
			s.over = true
			s.result, s.reason = result, reason
			if s.policy.RecordPGN {
				s.writer.SetResult(result.String())
			}
		}
	}

	logw.Infof(ctx, "session %v: submitted %v (%v)", s.id, san, move)
	return nil
}

// AddComment/AddNAG annotate the most recently submitted move.
func (s *Session) AddComment(text string) { s.writer.AddComment(text) }
func (s *Session) AddNAG(n pgn.NAG)        { s.writer.AddNAG(n) }

// StartVariation opens an alternative line branching from the position
// before the active line's last move, mirroring the writer's own frame
// stack so BoardState reflects the variation, not the line it branched
// from, until EndVariation closes it.
func (s *Session) StartVariation() error {
	if !s.policy.AllowVariations {
		return &PolicyError{Msg: "variations are not allowed under this session's policy"}
	}
	vw, ok := s.writer.(*pgn.VariationWriter)
	if !ok {
		return &PolicyError{Msg: "session writer does not support variations"}
	}

	active := s.top()
	if len(active.history) == 0 {
		return &PolicyError{Msg: "no move to branch from"}
	}
	branchState := active.history[len(active.history)-1].preState

	if err := vw.StartVariation(); err != nil {
		return err
	}
	s.lines = append(s.lines, &line{state: branchState})
	return nil
}

// EndVariation closes the innermost open variation, returning BoardState
// to whatever line it branched from.
func (s *Session) EndVariation() error {
	if !s.policy.AllowVariations {
		return &PolicyError{Msg: "variations are not allowed under this session's policy"}
	}
	vw, ok := s.writer.(*pgn.VariationWriter)
	if !ok {
		return &PolicyError{Msg: "session writer does not support variations"}
	}
	if len(s.lines) == 1 {
		return &PolicyError{Msg: "no variation is open"}
	}

	if err := vw.EndVariation(); err != nil {
		return err
	}
	s.lines = s.lines[:len(s.lines)-1]
	return nil
}

// Takeback pops the active line's last submitted move, restoring state to
// immediately before it and clearing terminal flags. PGN text already
// recorded for that move is not rewound: the writer has no removal
// operation.
func (s *Session) Takeback() error {
	if !s.policy.AllowTakebacks {
		return &PolicyError{Msg: "takebacks are not allowed under this session's policy"}
	}
	active := s.top()
	if len(active.history) == 0 {
		return &PolicyError{Msg: "no move to take back"}
	}

	last := active.history[len(active.history)-1]
	active.history = active.history[:len(active.history)-1]
	active.state = last.preState
	s.over = false
	s.result = board.Undecided
	s.reason = board.ReasonNone
	return nil
}

// Reset reinstalls the starting position and clears the writer and
// history, starting the session over. Any open variation is discarded.
func (s *Session) Reset(startFEN string) error {
	if startFEN == "" {
		startFEN = fen.Initial
	}
	state, err := fen.Decode(startFEN)
	if err != nil {
		return err
	}

	var w pgn.Writer
	if s.policy.AllowVariations {
		w = pgn.NewVariationWriter()
	} else {
		w = pgn.NewMainlineWriter()
	}

	s.writer = w
	s.lines = []*line{{state: state}}
	s.over = false
	s.result = board.Undecided
	s.reason = board.ReasonNone
	return nil
}
