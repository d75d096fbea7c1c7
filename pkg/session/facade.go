package session

import (
	"context"
	"sync"

	"github.com/seekerror/build"
	"github.com/seekerror/stdlib/pkg/util/contextx"

	"github.com/catachess/chesscore/pkg/board"
)

// Version identifies this package's protocol revision, for diagnostics and
// artifact provenance.
var Version = build.NewVersion(1, 0, 0)

// handle pairs a session with the mutex that enforces exclusive,
// single-writer access to it.
type handle struct {
	mu      sync.Mutex
	session *Session
}

// Facade owns a session_id -> session mapping. It is the only entry point
// external callers (HTTP routers, WebSocket workers, importers) should
// use: direct access to a Writer or the rule engine from outside it is
// forbidden by the session boundary, not the Go type system.
type Facade struct {
	mu       sync.Mutex
	sessions map[string]*handle
}

// NewFacade returns an empty facade.
func NewFacade() *Facade {
	return &Facade{sessions: make(map[string]*handle)}
}

// CreateSession creates a new session under id. It fails if id is already
// in use.
func (f *Facade) CreateSession(id string, policy GamePolicy, startFEN string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.sessions[id]; exists {
		return &DuplicateSessionError{SessionID: id}
	}

	s, err := New(id, policy, startFEN)
	if err != nil {
		return err
	}
	f.sessions[id] = &handle{session: s}
	return nil
}

// RemoveSession drops a session from the facade. It is a no-op error if
// the session does not exist.
func (f *Facade) RemoveSession(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.sessions[id]; !exists {
		return &SessionNotFoundError{SessionID: id}
	}
	delete(f.sessions, id)
	return nil
}

func (f *Facade) lookup(id string) (*handle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	h, ok := f.sessions[id]
	if !ok {
		return nil, &SessionNotFoundError{SessionID: id}
	}
	return h, nil
}

// withSession runs fn with exclusive access to the named session: no two
// calls against the same session id ever run concurrently, while
// different sessions proceed fully in parallel.
func (f *Facade) withSession(id string, fn func(*Session) error) error {
	h, err := f.lookup(id)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return fn(h.session)
}

// SubmitMove submits move to the named session under exclusive access.
func (f *Facade) SubmitMove(ctx context.Context, id string, move board.Move) error {
	if contextx.IsCancelled(ctx) {
		return ctx.Err()
	}
	return f.withSession(id, func(s *Session) error {
		return s.SubmitMove(ctx, move)
	})
}

// BoardState returns a snapshot of the named session's current position.
func (f *Facade) BoardState(id string) (*board.BoardState, error) {
	var out *board.BoardState
	err := f.withSession(id, func(s *Session) error {
		out = s.BoardState()
		return nil
	})
	return out, err
}

// PGN renders the named session's recorded game text.
func (f *Facade) PGN(id string) (string, error) {
	var out string
	err := f.withSession(id, func(s *Session) error {
		out = s.PGN()
		return nil
	})
	return out, err
}

// Takeback undoes the named session's last submitted move.
func (f *Facade) Takeback(id string) error {
	return f.withSession(id, func(s *Session) error {
		return s.Takeback()
	})
}

// Reset reinstalls the named session's starting position.
func (f *Facade) Reset(id string, startFEN string) error {
	return f.withSession(id, func(s *Session) error {
		return s.Reset(startFEN)
	})
}
