package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/prometheus/procfs"

	"github.com/ryanjlittle/coup-ismcts/pkg/engine"
)

// runBench plays numGames self-play games to completion, each move chosen
// by ISMCTS, and reports wall-clock time and resident memory before and
// after — a rough check that search iterations are not leaking state
// between calls (§5: each search call owns its own tree and clones).
func runBench(numGames, iterMax int, seed int64) error {
	before, haveBefore := residentMemoryKB()

	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	var totalMoves int

	for g := 0; g < numGames; g++ {
		state := engine.NewState(2, rand.New(rand.NewSource(rng.Int63())))
		for !state.IsTerminal() {
			move, err := engine.ISMCTS(state, engine.SearchOptions{
				IterMax: iterMax,
				Rng:     rand.New(rand.NewSource(rng.Int63())),
			})
			if err != nil {
				return fmt.Errorf("coupcli: bench game %d: %w", g, err)
			}
			if err := state.ApplyMove(move); err != nil {
				return fmt.Errorf("coupcli: bench game %d: apply %s: %w", g, move, err)
			}
			totalMoves++
		}
	}

	elapsed := time.Since(start)
	fmt.Printf("played %d games, %d moves, in %s (%.2f moves/sec)\n",
		numGames, totalMoves, elapsed, float64(totalMoves)/elapsed.Seconds())

	after, haveAfter := residentMemoryKB()
	if haveBefore && haveAfter {
		fmt.Printf("resident memory: %d KB -> %d KB\n", before, after)
	}
	return nil
}

// residentMemoryKB reads this process's resident set size via procfs.
// It returns ok=false if /proc is unavailable (e.g. non-Linux), since
// benchmarking is diagnostic, not load-bearing.
func residentMemoryKB() (kb int, ok bool) {
	fs, err := procfs.NewDefaultFS()
	if err != nil {
		return 0, false
	}
	self, err := fs.Self()
	if err != nil {
		return 0, false
	}
	stat, err := self.Stat()
	if err != nil {
		return 0, false
	}
	return stat.ResidentMemory() / 1024, true
}
