// Package ismcts implements information-set Monte Carlo tree search over
// pkg/coup states: one shared tree, visited through successive
// determinizations of the hidden information, selected with UCB1 and an
// availability count so that exploration pressure stays fair across
// children that are not always legal (§4.7).
package ismcts

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/decred/slog"

	"github.com/ryanjlittle/coup-ismcts/pkg/coup"
	"github.com/ryanjlittle/coup-ismcts/pkg/searchtree"
)

// Variant selects how the root state is determinized each iteration.
type Variant int

const (
	// Single always determinizes from the searching player's point of
	// view: randomize_for(root.PlayerToMove()).
	Single Variant = iota
	// Split spends the first 70% of iterations on a fully-resampled
	// world (self_determinize) to mitigate strategy fusion, then
	// switches to single-observer determinization for the remainder.
	Split
)

// DefaultExploration is √2/2, the engine default; Coup searches in
// practice tend to want something in the 1.5-2.0 range, passed
// explicitly via Options.Exploration.
const DefaultExploration = math.Sqrt2 / 2

// splitSelfDeterminizeFraction is the fraction of a split search's
// budget spent on self_determinize before switching to single-observer
// randomize_for (§4.7).
const splitSelfDeterminizeFraction = 0.7

// ErrEmptySearch is returned (wrapped) when Search is called on a
// terminal state: there is no move to return, and returning an arbitrary
// one would hide the caller's bug of not checking IsTerminal first (§7).
var ErrEmptySearch = errors.New("ismcts: no legal move at a terminal state")

// Options configures a search.
type Options struct {
	// IterMax is the iteration budget; must be >= 1.
	IterMax int
	// Exploration is the UCB1 constant c. Zero means DefaultExploration.
	Exploration float64
	// Variant selects the determinization schedule (default Single).
	Variant Variant
	// Rng drives the search's own random choices: which untried move to
	// expand, and which legal move to play during simulation. A nil Rng
	// draws from an unseeded source. Determinization's card shuffles use
	// root's own *rand.Rand (the one it was constructed with), not this
	// one — a caller after reproducible games seeds both root and Rng.
	Rng *rand.Rand
	// Log receives phase-level tracing, one line per iteration phase
	// transition at Trace level. A nil Log discards it.
	Log slog.Logger
}

func (o Options) exploration() float64 {
	if o.Exploration == 0 {
		return DefaultExploration
	}
	return o.Exploration
}

// Search runs Options.Variant (defaulting to Single if Options.Variant
// was never set to Split) for Options.IterMax iterations from root and
// returns the move played most often from the root — the highest-visits
// child, not the highest mean, which is noisier at low iteration counts.
func Search(root *coup.State, opts Options) (coup.Move, error) {
	if root.IsTerminal() {
		return coup.Move{}, fmt.Errorf("ismcts: %w", ErrEmptySearch)
	}
	if opts.IterMax < 1 {
		return coup.Move{}, fmt.Errorf("ismcts: IterMax must be >= 1, got %d", opts.IterMax)
	}

	log := opts.Log
	if log == nil {
		log = slog.Disabled
	}
	rng := opts.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	tree := searchtree.NewRoot()
	exploration := opts.exploration()

	for i := 0; i < opts.IterMax; i++ {
		determinized := determinize(root, opts.Variant, i, opts.IterMax, rng)
		runIteration(tree, determinized, exploration, rng, log, i)
	}

	best := tree.MostVisitedChild()
	if best == nil || best.Move == nil {
		return coup.Move{}, fmt.Errorf("ismcts: %w", ErrEmptySearch)
	}
	return *best.Move, nil
}

// determinize applies §4.7 step 1's schedule: Single always resamples
// from the searching player's point of view; Split spends the first
// splitSelfDeterminizeFraction of the budget on a fully-resampled world.
func determinize(root *coup.State, variant Variant, iteration, iterMax int, rng *rand.Rand) *coup.State {
	if variant == Split && iteration < int(splitSelfDeterminizeFraction*float64(iterMax)) {
		return root.SelfDeterminize()
	}
	return root.RandomizeFor(root.PlayerToMove())
}

// iterState is the entity threaded through the per-iteration phase chain
// (pkg/statemachine): one determinized world, the tree position reached
// so far, and the path of visited nodes for backpropagation.
type iterState struct {
	state       *coup.State
	node        *searchtree.Node
	path        []*searchtree.Node
	exploration float64
	rng         *rand.Rand
}

func runIteration(root *searchtree.Node, determinized *coup.State, exploration float64, rng *rand.Rand, log slog.Logger, iteration int) {
	it := &iterState{
		state:       determinized,
		node:        root,
		path:        []*searchtree.Node{root},
		exploration: exploration,
		rng:         rng,
	}

	trace := func(phaseName string, event statemachinePhase) {
		if event == phaseEntered {
			log.Tracef("ismcts: iteration %d entering phase %s", iteration, phaseName)
		}
	}

	sm := newPhaseMachine(it, trace)
	sm.run()
}

func selectPhase(it *iterState) {
	for {
		legal := it.state.LegalMoves()
		if len(legal) == 0 {
			return
		}
		untried := it.node.Untried(legal)
		if len(untried) > 0 {
			return
		}
		child := it.node.UCBSelect(legal, it.exploration)
		if child == nil {
			return
		}
		if err := it.state.ApplyMove(*child.Move); err != nil {
			return
		}
		it.node = child
		it.path = append(it.path, child)
	}
}

func expandPhase(it *iterState) {
	legal := it.state.LegalMoves()
	if len(legal) == 0 {
		return
	}
	untried := it.node.Untried(legal)
	if len(untried) == 0 {
		return
	}

	move := untried[it.rng.Intn(len(untried))]
	playerJustMoved := it.state.PlayerToMove()
	if err := it.state.ApplyMove(move); err != nil {
		return
	}
	child := it.node.AddChild(move, playerJustMoved)
	it.node = child
	it.path = append(it.path, child)
}

func simulatePhase(it *iterState) {
	for {
		legal := it.state.LegalMoves()
		if len(legal) == 0 {
			return
		}
		move := legal[it.rng.Intn(len(legal))]
		if err := it.state.ApplyMove(move); err != nil {
			return
		}
	}
}

func backpropagatePhase(it *iterState) {
	for _, n := range it.path {
		n.Update(it.state)
	}
}
