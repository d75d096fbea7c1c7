// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"sort"
	"time"

	"github.com/seekerror/logw"

	"github.com/catachess/chesscore/pkg/board"
	"github.com/catachess/chesscore/pkg/board/fen"
)

var (
	depth    = flag.Int("depth", 4, "Search depth")
	position = flag.String("fen", "", "Start position (default to standard)")
	divide   = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *position == "" {
		*position = fen.Initial
	}

	s, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *position, err)
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := board.Perft(s, i)
		duration := time.Since(start)

		if *divide && i == *depth {
			printDivide(board.PerftDivide(s, i))
		}
		println(fmt.Sprintf("perft,%v,%v,%v,%v", *position, i, nodes, duration.Microseconds()))
	}
}

func printDivide(counts map[string]uint64) {
	moves := make([]string, 0, len(counts))
	for m := range counts {
		moves = append(moves, m)
	}
	sort.Strings(moves)
	for _, m := range moves {
		println(fmt.Sprintf("%v: %v", m, counts[m]))
	}
}
