package coup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveEqual_NewHandIsMultisetEqual(t *testing.T) {
	a := NewHandMove([]Role{Duke, Captain})
	b := NewHandMove([]Role{Captain, Duke})
	assert.True(t, a.Equal(b))
}

func TestMoveEqual_NewHandDiffersByMultiplicity(t *testing.T) {
	a := NewHandMove([]Role{Duke, Duke})
	b := NewHandMove([]Role{Duke, Captain})
	assert.False(t, a.Equal(b))
}

func TestMoveEqual_TargetsAreDistinctChildren(t *testing.T) {
	assert.False(t, TargetMove(3).Equal(TargetMove(4)))
	assert.True(t, TargetMove(3).Equal(TargetMove(3)))
}

func TestMoveEqual_DifferentKindsNeverEqual(t *testing.T) {
	assert.False(t, AllowMove().Equal(ChallengeMove()))
}

func TestMoveEqual_ActionAndBlockCompareByPayload(t *testing.T) {
	assert.True(t, ActionMove(ActionDuke).Equal(ActionMove(ActionDuke)))
	assert.False(t, ActionMove(ActionDuke).Equal(ActionMove(ActionCaptain)))
	assert.True(t, BlockMove(Contessa).Equal(BlockMove(Contessa)))
}

func TestContainsMove(t *testing.T) {
	moves := []Move{AllowMove(), ChallengeMove(), BlockMove(Duke)}
	assert.True(t, containsMove(moves, BlockMove(Duke)))
	assert.False(t, containsMove(moves, BlockMove(Contessa)))
}

func TestMoveString_RendersReadableLabels(t *testing.T) {
	assert.Equal(t, "Allow", AllowMove().String())
	assert.Equal(t, "Challenge", ChallengeMove().String())
	assert.Equal(t, string(ActionDuke), ActionMove(ActionDuke).String())
	assert.Equal(t, "NewHand(Captain,Duke)", NewHandMove([]Role{Duke, Captain}).String())
}
