// Command coupcli is a small demo driver over pkg/engine: it deals a
// game, then either lets ISMCTS play every seat (watch) or lets one
// human seat play against ISMCTS opponents (play), rendering the table
// with bubbletea/lipgloss and optionally logging each decision to a
// SQLite match-history file.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/decred/slog"
	"github.com/google/uuid"

	"github.com/ryanjlittle/coup-ismcts/pkg/engine"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "watch":
		err = runWatch(os.Args[2:])
	case "play":
		err = runPlay(os.Args[2:])
	case "bench":
		err = runBenchCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "coupcli:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: coupcli <watch|play|bench> [flags]")
}

func commonFlags(fs *flag.FlagSet) (players *int, iterMax *int, exploration *float64, seed *int64, historyPath *string, debugLevel *string) {
	players = fs.Int("players", 2, "number of real players (2..6)")
	iterMax = fs.Int("iters", 500, "ISMCTS iterations per move")
	exploration = fs.Float64("exploration", 1.5, "UCB1 exploration constant")
	seed = fs.Int64("seed", 0, "deterministic RNG seed (0 = random)")
	historyPath = fs.String("history", "", "path to a SQLite match-history log (empty disables logging)")
	debugLevel = fs.String("debuglevel", "info", "logging level: trace, debug, info, warn, error")
	return
}

func newLogger(debugLevel string) slog.Logger {
	backend := slog.NewBackend(os.Stderr)
	log := backend.Logger("COUPCLI")
	lvl, ok := slog.LevelFromString(debugLevel)
	if !ok {
		lvl = slog.LevelInfo
	}
	log.SetLevel(lvl)
	return log
}

func openHistoryIfRequested(path string, numPlayers int, seed int64, matchID string) (*matchHistory, error) {
	if path == "" {
		return nil, nil
	}
	h, err := openMatchHistory(path)
	if err != nil {
		return nil, err
	}
	if err := h.recordMatchStart(matchID, numPlayers, seed); err != nil {
		h.Close()
		return nil, err
	}
	return h, nil
}

func runWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	players, iterMax, exploration, seed, historyPath, debugLevel := commonFlags(fs)
	fs.Parse(args)

	log := newLogger(*debugLevel)
	log.Infof("starting watch: %d players, %d iterations/move", *players, *iterMax)

	actualSeed := *seed
	if actualSeed == 0 {
		actualSeed = rand.Int63()
	}
	matchID := uuid.NewString()

	history, err := openHistoryIfRequested(*historyPath, *players, actualSeed, matchID)
	if err != nil {
		return err
	}
	if history != nil {
		defer history.Close()
	}

	state := engine.NewState(*players, rand.New(rand.NewSource(actualSeed)))
	m := newModel(state, matchID, history, modeWatch, 0, *iterMax, *exploration, rand.New(rand.NewSource(actualSeed^0x5555)))

	_, err = tea.NewProgram(m).Run()
	return err
}

func runPlay(args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	players, iterMax, exploration, seed, historyPath, debugLevel := commonFlags(fs)
	human := fs.Int("seat", 1, "which seat the human plays (1..players)")
	fs.Parse(args)

	log := newLogger(*debugLevel)
	log.Infof("starting play: %d players, seat %d is human", *players, *human)

	actualSeed := *seed
	if actualSeed == 0 {
		actualSeed = rand.Int63()
	}
	matchID := uuid.NewString()

	history, err := openHistoryIfRequested(*historyPath, *players, actualSeed, matchID)
	if err != nil {
		return err
	}
	if history != nil {
		defer history.Close()
	}

	state := engine.NewState(*players, rand.New(rand.NewSource(actualSeed)))
	m := newModel(state, matchID, history, modePlay, *human, *iterMax, *exploration, rand.New(rand.NewSource(actualSeed^0x5555)))

	_, err = tea.NewProgram(m).Run()
	return err
}

func runBenchCmd(args []string) error {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	games := fs.Int("games", 20, "number of self-play games")
	iterMax := fs.Int("iters", 200, "ISMCTS iterations per move")
	seed := fs.Int64("seed", 1, "RNG seed")
	fs.Parse(args)

	return runBench(*games, *iterMax, *seed)
}
