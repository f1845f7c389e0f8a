// Package engine is the thin façade external callers use: constructing
// games and running a search without reaching into pkg/coup,
// pkg/searchtree, or pkg/ismcts directly. It wires sensible defaults
// (an unseeded RNG, a disabled logger) so a caller that only wants a
// move can ignore both.
package engine

import (
	"math/rand"

	"github.com/decred/slog"

	"github.com/ryanjlittle/coup-ismcts/pkg/coup"
	"github.com/ryanjlittle/coup-ismcts/pkg/ismcts"
)

// NewState constructs a fresh Coup game for numRealPlayers (2..6),
// seeded by rng. A nil rng draws from a time-seeded source (§6).
func NewState(numRealPlayers int, rng *rand.Rand) *coup.State {
	return coup.NewState(numRealPlayers, rng)
}

// SearchOptions configures ISMCTS/ISMCTSSplit. The zero value is usable:
// it runs a single iteration with the default exploration constant and a
// fresh, unseeded RNG.
type SearchOptions struct {
	IterMax     int
	Exploration float64
	Rng         *rand.Rand
	Log         slog.Logger
}

func (o SearchOptions) toEngineOptions(variant ismcts.Variant) ismcts.Options {
	iterMax := o.IterMax
	if iterMax < 1 {
		iterMax = 1
	}
	return ismcts.Options{
		IterMax:     iterMax,
		Exploration: o.Exploration,
		Variant:     variant,
		Rng:         o.Rng,
		Log:         o.Log,
	}
}

// ISMCTS runs the single-determinization-variant search of §4.7 and
// returns the move played most often from the root.
func ISMCTS(state *coup.State, opts SearchOptions) (coup.Move, error) {
	return ismcts.Search(state, opts.toEngineOptions(ismcts.Single))
}

// ISMCTSSplit runs the split-determinization variant: the first 70% of
// the iteration budget explores worlds resampled for every player
// (mitigating strategy fusion), the remainder determinizes only for the
// state's player to move.
func ISMCTSSplit(state *coup.State, opts SearchOptions) (coup.Move, error) {
	return ismcts.Search(state, opts.toEngineOptions(ismcts.Split))
}
