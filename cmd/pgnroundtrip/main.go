package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/seekerror/logw"

	"github.com/catachess/chesscore/pkg/session"
	"github.com/catachess/chesscore/pkg/session/console"
)

var (
	policyName = flag.String("policy", "analysis", "Session policy: standard, analysis, puzzle, or study")
	startFEN   = flag.String("fen", "", "Starting position (defaults to the standard initial position)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: pgnroundtrip [options]

pgnroundtrip is a console driver over a single chesscore session: submit
moves, take them back, reset, and inspect the FEN and PGN the session
records as you go. The console has no command to open or close a
variation.
Options:
`)
		flag.PrintDefaults()
	}
}

func policyByName(name string) (session.GamePolicy, error) {
	switch name {
	case "standard":
		return session.StandardGame, nil
	case "analysis":
		return session.Analysis, nil
	case "puzzle":
		return session.Puzzle, nil
	case "study":
		return session.Study, nil
	default:
		return session.GamePolicy{}, fmt.Errorf("unknown policy %q", name)
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	policy, err := policyByName(*policyName)
	if err != nil {
		flag.Usage()
		logw.Exitf(ctx, "%v", err)
	}

	const sessionID = "pgnroundtrip"
	facade := session.NewFacade()
	if err := facade.CreateSession(sessionID, policy, *startFEN); err != nil {
		logw.Exitf(ctx, "failed to create session: %v", err)
	}

	in := console.ReadStdinLines(ctx)
	driver, out := console.NewDriver(ctx, facade, sessionID, in)
	go console.WriteStdoutLines(ctx, out)

	<-driver.Closed()
}
