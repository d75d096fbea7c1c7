// Package console implements a line-based REPL driver over a
// session.Facade, in the same in-channel/out-channel, async-closeable
// shape as the rule engine's own console driver.
package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"

	"github.com/catachess/chesscore/pkg/board"
	"github.com/catachess/chesscore/pkg/board/fen"
	"github.com/catachess/chesscore/pkg/session"
)

const ProtocolName = "console"

// Driver runs a command loop against one session of a Facade.
type Driver struct {
	iox.AsyncCloser

	facade    *session.Facade
	sessionID string

	out chan<- string
}

// NewDriver starts the driver's processing loop and returns it along with
// its output stream. Closing in (or calling Close) stops the loop.
func NewDriver(ctx context.Context, facade *session.Facade, sessionID string, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		facade:      facade,
		sessionID:   sessionID,
		out:         out,
	}
	go d.process(ctx, in)
	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "console protocol initialized")
	d.printBoard(ctx)

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "input stream broken, exiting")
				return
			}
			if d.dispatch(ctx, line) {
				return
			}

		case <-d.Closed():
			logw.Infof(ctx, "driver closed")
			return
		}
	}
}

// dispatch runs one command line and reports whether the driver should
// stop.
func (d *Driver) dispatch(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}
	cmd, args := strings.ToLower(parts[0]), parts[1:]

	switch cmd {
	case "quit", "exit", "q":
		return true

	case "move", "m":
		if len(args) == 0 {
			d.out <- "usage: move <uci>"
			return false
		}
		d.submit(ctx, args[0])

	case "takeback", "undo", "u":
		if err := d.facade.Takeback(d.sessionID); err != nil {
			d.out <- fmt.Sprintf("takeback failed: %v", err)
			return false
		}
		d.printBoard(ctx)

	case "reset":
		pos := ""
		if len(args) > 0 {
			pos = strings.Join(args, " ")
		}
		if err := d.facade.Reset(d.sessionID, pos); err != nil {
			d.out <- fmt.Sprintf("reset failed: %v", err)
			return false
		}
		d.printBoard(ctx)

	case "fen":
		state, err := d.facade.BoardState(d.sessionID)
		if err != nil {
			d.out <- fmt.Sprintf("error: %v", err)
			return false
		}
		d.out <- fen.Encode(state)

	case "pgn":
		text, err := d.facade.PGN(d.sessionID)
		if err != nil {
			d.out <- fmt.Sprintf("error: %v", err)
			return false
		}
		d.out <- text

	case "print", "p":
		d.printBoard(ctx)

	default:
		// Anything unrecognized is assumed to be a bare UCI move, as in
		// the rule engine's own console driver.
		d.submit(ctx, cmd)
	}
	return false
}

func (d *Driver) submit(ctx context.Context, uci string) {
	move, err := board.ParseMove(uci)
	if err != nil {
		d.out <- fmt.Sprintf("invalid move: %v", err)
		return
	}
	if err := d.facade.SubmitMove(ctx, d.sessionID, move); err != nil {
		d.out <- fmt.Sprintf("illegal move: %v", err)
		return
	}
	d.printBoard(ctx)
}

func (d *Driver) printBoard(ctx context.Context) {
	state, err := d.facade.BoardState(d.sessionID)
	if err != nil {
		d.out <- fmt.Sprintf("error: %v", err)
		return
	}
	d.out <- state.String()
	d.out <- fmt.Sprintf("fen: %v", fen.Encode(state))
}
