package ismcts

import (
	"github.com/ryanjlittle/coup-ismcts/pkg/statemachine"
)

// statemachinePhase and phaseEntered are a thin rename of
// statemachine.Phase and statemachine.PhaseEntered so the trace callback
// in runIteration (engine.go) reads in domain terms without importing the
// package alias there.
type statemachinePhase = statemachine.Phase

const (
	phaseEntered = statemachine.PhaseEntered
)

// newPhaseMachine builds the select -> expand -> simulate -> backpropagate
// chain (§4.7) as a statemachine.StateMachine[iterState]: each link runs
// its work directly against it.state/it.node and returns the next link,
// terminating after backpropagation.
func newPhaseMachine(it *iterState, trace func(string, statemachine.Phase)) *phaseRunner {
	return &phaseRunner{sm: statemachine.NewStateMachine(it, selectStateFn), trace: trace}
}

type phaseRunner struct {
	sm    *statemachine.StateMachine[iterState]
	trace func(string, statemachine.Phase)
}

func (r *phaseRunner) run() {
	r.sm.Run(r.trace)
}

func selectStateFn(it *iterState, trace func(string, statemachine.Phase)) statemachine.StateFn[iterState] {
	trace("select", statemachine.PhaseEntered)
	selectPhase(it)
	trace("select", statemachine.PhaseExited)
	return expandStateFn
}

func expandStateFn(it *iterState, trace func(string, statemachine.Phase)) statemachine.StateFn[iterState] {
	trace("expand", statemachine.PhaseEntered)
	expandPhase(it)
	trace("expand", statemachine.PhaseExited)
	return simulateStateFn
}

func simulateStateFn(it *iterState, trace func(string, statemachine.Phase)) statemachine.StateFn[iterState] {
	trace("simulate", statemachine.PhaseEntered)
	simulatePhase(it)
	trace("simulate", statemachine.PhaseExited)
	return backpropagateStateFn
}

func backpropagateStateFn(it *iterState, trace func(string, statemachine.Phase)) statemachine.StateFn[iterState] {
	trace("backpropagate", statemachine.PhaseEntered)
	backpropagatePhase(it)
	trace("backpropagate", statemachine.PhaseExited)
	return nil
}
