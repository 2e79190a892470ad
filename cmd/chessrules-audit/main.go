// chessrules-audit counts the move tree of known positions to fixed
// depths and compares the counts against recorded baselines. A mismatch
// means the move generator or the turn controller regressed.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/quillo/chessrules/internal/board"
	"github.com/quillo/chessrules/internal/fen"
	"github.com/quillo/chessrules/internal/game"
)

type auditCase struct {
	name     string
	fen      string
	expected map[int]int64
}

var suite = []auditCase{
	{
		name:     "startpos",
		fen:      fen.StartFEN,
		expected: map[int]int64{1: 20, 2: 400, 3: 8902, 4: 197281},
	},
	{
		name:     "kiwipete",
		fen:      "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		expected: map[int]int64{1: 48, 2: 2039},
	},
	{
		name:     "endgame",
		fen:      "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		expected: map[int]int64{1: 14, 2: 191},
	},
}

var (
	depthFlag = flag.Int("depth", 0, "count a single depth instead of the recorded baselines")
	fenFlag   = flag.String("fen", "", "count a single position instead of the built-in suite")
)

func main() {
	flag.Parse()
	log.SetFlags(0)

	if *fenFlag != "" {
		if *depthFlag <= 0 {
			log.Fatal("-fen requires -depth")
		}
		g, err := game.Load(fen.Parse(*fenFlag))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s depth %d: %d\n", *fenFlag, *depthFlag, countMoves(g, *depthFlag))
		return
	}

	failed := false
	for _, tc := range suite {
		g, err := game.Load(fen.Parse(tc.fen))
		if err != nil {
			log.Fatal(err)
		}
		for depth := 1; depth <= maxDepth(tc.expected); depth++ {
			if *depthFlag > 0 && depth != *depthFlag {
				continue
			}
			want, ok := tc.expected[depth]
			if !ok {
				continue
			}
			got := countMoves(g, depth)
			status := "ok"
			if got != want {
				status = fmt.Sprintf("MISMATCH (want %d)", want)
				failed = true
			}
			fmt.Printf("%-10s depth %d: %-8d %s\n", tc.name, depth, got, status)
		}
	}
	if failed {
		os.Exit(1)
	}
}

func maxDepth(expected map[int]int64) int {
	max := 0
	for d := range expected {
		if d > max {
			max = d
		}
	}
	return max
}

// countMoves walks the legal move tree to the given depth, fanning the
// root moves out over the available cores.
func countMoves(g *game.Game, depth int) int64 {
	if depth <= 0 {
		return 1
	}

	moves := g.LegalMoves()
	if depth == 1 {
		return int64(len(moves))
	}

	var total atomic.Int64
	var wg errgroup.Group
	wg.SetLimit(runtime.NumCPU())
	for _, m := range moves {
		m := m
		wg.Go(func() error {
			child := g.Clone()
			playMove(child, m)
			total.Add(countSequential(child, depth-1))
			return nil
		})
	}
	// Workers never return errors; Wait only joins them.
	_ = wg.Wait()
	return total.Load()
}

func countSequential(g *game.Game, depth int) int64 {
	moves := g.LegalMoves()
	if depth == 1 {
		return int64(len(moves))
	}
	var n int64
	for _, m := range moves {
		child := g.Clone()
		playMove(child, m)
		n += countSequential(child, depth-1)
	}
	return n
}

func playMove(g *game.Game, m game.Move) {
	promo := board.NoPieceType
	if g.RequiresPromotion(m.From, m.To) {
		promo = board.Queen
	}
	if !g.ProposeMove(m.From, m.To, promo) {
		log.Fatalf("cached move %s rejected", m)
	}
}
