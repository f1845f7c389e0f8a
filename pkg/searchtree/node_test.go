package searchtree

import (
	"math"
	"testing"

	"github.com/ryanjlittle/coup-ismcts/pkg/coup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoot_HasNilMove(t *testing.T) {
	root := NewRoot()
	assert.Nil(t, root.Move)
}

func TestUntried_ExcludesChildMoves(t *testing.T) {
	root := NewRoot()
	root.AddChild(coup.AllowMove(), 1)

	legal := []coup.Move{coup.AllowMove(), coup.ChallengeMove()}
	untried := root.Untried(legal)

	require.Len(t, untried, 1)
	assert.True(t, untried[0].Equal(coup.ChallengeMove()))
}

func TestUCBSelect_PrefersUnvisitedChild(t *testing.T) {
	root := NewRoot()
	visited := root.AddChild(coup.AllowMove(), 1)
	visited.Visits = 10
	visited.Wins = 5
	unvisited := root.AddChild(coup.ChallengeMove(), 1)
	_ = unvisited

	legal := []coup.Move{coup.AllowMove(), coup.ChallengeMove()}
	selected := root.UCBSelect(legal, 1.4)

	require.NotNil(t, selected)
	assert.True(t, selected.Move.Equal(coup.ChallengeMove()))
}

func TestUCBSelect_IncrementsAvailsOnEveryLegalChild(t *testing.T) {
	root := NewRoot()
	a := root.AddChild(coup.AllowMove(), 1)
	a.Visits = 1
	b := root.AddChild(coup.ChallengeMove(), 1)
	b.Visits = 1

	legal := []coup.Move{coup.AllowMove(), coup.ChallengeMove()}
	root.UCBSelect(legal, 1.4)

	assert.Equal(t, 2, a.Avails)
	assert.Equal(t, 2, b.Avails)
}

func TestUCBSelect_RestrictsToLegalChildren(t *testing.T) {
	root := NewRoot()
	legalChild := root.AddChild(coup.AllowMove(), 1)
	legalChild.Visits = 1
	illegalChild := root.AddChild(coup.ChallengeMove(), 1)
	illegalChild.Visits = 1

	selected := root.UCBSelect([]coup.Move{coup.AllowMove()}, 1.4)

	require.NotNil(t, selected)
	assert.True(t, selected.Move.Equal(coup.AllowMove()))
	assert.Equal(t, 1, illegalChild.Avails, "illegal child must not have its avails bumped")
}

func TestUpdate_RootOnlyBumpsVisits(t *testing.T) {
	root := NewRoot()
	s := coup.NewState(2, nil)
	root.Update(s)
	assert.Equal(t, 1, root.Visits)
	assert.Equal(t, float64(0), root.Wins)
}

func TestUpdate_ChildCreditsPlayerJustMoved(t *testing.T) {
	root := NewRoot()
	child := root.AddChild(coup.ActionMove(coup.ActionIncome), 1)

	s := coup.NewState(2, nil)
	child.Update(s)

	assert.Equal(t, 1, child.Visits)
	assert.Equal(t, float64(s.Result(1)), child.Wins)
}

func TestMostVisitedChild_PicksHighestVisits(t *testing.T) {
	root := NewRoot()
	low := root.AddChild(coup.AllowMove(), 1)
	low.Visits = 2
	high := root.AddChild(coup.ChallengeMove(), 1)
	high.Visits = 9

	best := root.MostVisitedChild()
	require.NotNil(t, best)
	assert.True(t, best.Move.Equal(coup.ChallengeMove()))
}

func TestUCB1_UnvisitedChildIsInfinite(t *testing.T) {
	root := NewRoot()
	child := root.AddChild(coup.AllowMove(), 1)
	assert.True(t, math.IsInf(child.ucb1(1.4), 1))
}
