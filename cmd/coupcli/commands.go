package main

import (
	"math/rand"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryanjlittle/coup-ismcts/pkg/coup"
	"github.com/ryanjlittle/coup-ismcts/pkg/engine"
)

// moveAppliedMsg carries a move chosen for the current player to move,
// to be applied on the next Update.
type moveAppliedMsg coup.Move

// searchErrMsg reports a search failure (only possible if called on an
// already-terminal state, which the model guards against).
type searchErrMsg error

// searchMoveCmd runs ISMCTS off the UI goroutine and reports the chosen
// move back as a bubbletea message.
func searchMoveCmd(state *coup.State, iterMax int, exploration float64, rng *rand.Rand) tea.Cmd {
	return func() tea.Msg {
		move, err := engine.ISMCTS(state, engine.SearchOptions{
			IterMax:     iterMax,
			Exploration: exploration,
			Rng:         rand.New(rand.NewSource(rng.Int63())),
		})
		if err != nil {
			return searchErrMsg(err)
		}
		return moveAppliedMsg(move)
	}
}
