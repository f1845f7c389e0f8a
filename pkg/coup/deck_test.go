package coup

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullDeck_HasThreeOfEachRole(t *testing.T) {
	counts := fullDeck()
	require.Len(t, counts, len(Roles))
	for _, r := range Roles {
		assert.Equal(t, CopiesPerRole, counts[r])
	}
}

func TestExpand_ProducesFifteenCards(t *testing.T) {
	deck := expand(fullDeck())
	assert.Len(t, deck, 15)
	tally := make(map[Role]int)
	for _, r := range deck {
		tally[r]++
	}
	for _, r := range Roles {
		assert.Equal(t, CopiesPerRole, tally[r])
	}
}

func TestUnseenCounts_SubtractsRevealedAndVisibleHands(t *testing.T) {
	revealed := map[Role]int{Duke: 1}
	hand := []Role{Ambassador, Ambassador}

	counts := unseenCounts(revealed, hand)
	assert.Equal(t, 2, counts[Duke])
	assert.Equal(t, 1, counts[Ambassador])
	assert.Equal(t, 3, counts[Captain])
}

func TestUnseenCounts_NoVisibleHandsSubtractsOnlyRevealed(t *testing.T) {
	revealed := map[Role]int{Assassin: 2}
	counts := unseenCounts(revealed)
	assert.Equal(t, 1, counts[Assassin])
	assert.Equal(t, 3, counts[Duke])
}

func TestDrawN_ReturnsRequestedCountWithoutExceedingAvailable(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	drawn := drawN(rng, fullDeck(), 5)
	assert.Len(t, drawn, 5)
}

func TestDrawN_PanicsWhenDeckExhausted(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	assert.Panics(t, func() { drawN(rng, map[Role]int{Duke: 1}, 2) })
}
