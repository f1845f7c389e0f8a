package coup

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededState(t *testing.T, n int) *State {
	t.Helper()
	return NewState(n, rand.New(rand.NewSource(1)))
}

func setupRaw(n int) *State {
	return &State{
		numPlayers:   n,
		playerToMove: 1,
		hands:        make(map[int][]Role, n+1),
		coins:        make(map[int]int, n),
		revealed:     make(map[Role]int, len(Roles)),
		knockedOut:   make(map[int]bool, n),
		rng:          rand.New(rand.NewSource(7)),
	}
}

// Scenario 1: forced coup at 10 coins.
func TestLegalMoves_ForcedCoupAtTenCoins(t *testing.T) {
	s := setupRaw(2)
	s.coins[1], s.coins[2] = 10, 2
	s.hands[1] = []Role{Duke, Duke}
	s.hands[2] = []Role{Assassin, Assassin}

	moves := s.LegalMoves()
	require.Len(t, moves, 1)
	assert.True(t, moves[0].Equal(ActionMove(ActionCoup)))
}

// Scenario 2: assassin lethal.
func TestApplyMove_AssassinLethal(t *testing.T) {
	s := setupRaw(2)
	s.coins[1], s.coins[2] = 3, 0
	s.hands[1] = []Role{Assassin, Duke}
	s.hands[2] = []Role{Captain}

	require.NoError(t, s.ApplyMove(ActionMove(ActionAssassin)))
	require.NoError(t, s.ApplyMove(TargetMove(2)))
	require.Equal(t, 2, s.PlayerToMove())

	require.NoError(t, s.ApplyMove(AllowMove()))
	require.True(t, s.revealingInfluence)
	require.Equal(t, 2, s.PlayerToMove())

	require.NoError(t, s.ApplyMove(RevealMove(Captain)))

	assert.True(t, s.IsKnockedOut(2))
	assert.True(t, s.IsTerminal())
	assert.Equal(t, 1, s.Result(1))
	assert.Equal(t, 0, s.Result(2))
}

// Scenario 3: failed challenge rebound.
func TestApplyMove_FailedChallengeRebound(t *testing.T) {
	s := setupRaw(2)
	s.coins[1], s.coins[2] = 0, 0
	s.hands[1] = []Role{Duke, Captain}
	s.hands[2] = []Role{Ambassador, Contessa}

	require.NoError(t, s.ApplyMove(ActionMove(ActionDuke)))
	require.Equal(t, 2, s.PlayerToMove())
	require.NoError(t, s.ApplyMove(ChallengeMove()))
	assert.Equal(t, EnvironmentPlayer, s.PlayerToMove())

	require.NoError(t, s.ApplyMove(ResolveChallengeMove()))
	require.True(t, s.revealingInfluence)
	assert.Equal(t, 2, s.PlayerToMove())

	require.NoError(t, s.ApplyMove(RevealMove(Contessa)))

	// The challenged Duke is shuffled back into the deck and a fresh card
	// drawn in its place: the replacement is not guaranteed to be a Duke,
	// only the hand size and coin gain are.
	assert.Len(t, s.Hand(1), 2)
	assert.Equal(t, 3, s.Coins(1))
	assert.Equal(t, 1, s.RevealedCount(Contessa))
	assertThreeOfEachRole(t, s)
}

// assertThreeOfEachRole checks the deck-conservation invariant: for every
// role, revealed-count + sum of holdings equals three (the residual deck
// makes up the rest, and is not tracked as a separate slice).
func assertThreeOfEachRole(t *testing.T, s *State) {
	t.Helper()
	counts := make(map[Role]int, len(Roles))
	for r, c := range s.revealed {
		counts[r] = c
	}
	for p := 1; p <= s.numPlayers; p++ {
		for _, r := range s.hands[p] {
			counts[r]++
		}
	}
	for _, r := range s.ambassadorCards {
		counts[r]++
	}
	for _, r := range Roles {
		assert.LessOrEqualf(t, counts[r], CopiesPerRole, "role %s overcommitted", r)
	}
}

// Scenario 4: Foreign Aid blocked by Duke bluff, unchallenged.
func TestApplyMove_ForeignAidBlockedUnchallenged(t *testing.T) {
	s := setupRaw(2)
	s.coins[1], s.coins[2] = 0, 0
	s.hands[1] = []Role{Captain, Captain}
	s.hands[2] = []Role{Ambassador, Ambassador}

	require.NoError(t, s.ApplyMove(ActionMove(ActionForeignAid)))
	require.Equal(t, 2, s.PlayerToMove())
	require.NoError(t, s.ApplyMove(BlockMove(Duke)))
	assert.Equal(t, 1, s.PlayerToMove())

	require.NoError(t, s.ApplyMove(AllowMove()))

	assert.Equal(t, 0, s.Coins(1))
	assert.Equal(t, 0, s.Coins(2))
	assert.Equal(t, 2, s.PlayerToMove())
}

// Scenario 5: ambassador legal-hand set.
func TestLegalMoves_AmbassadorHandSet(t *testing.T) {
	s := setupRaw(2)
	s.hands[1] = []Role{Assassin, Captain}
	s.currentAction = ActionAmbassador
	s.currentActionPlayer = 1
	s.ambassadorCards = []Role{Duke, Captain}

	moves := s.ambassadorHandMoves()
	// Six positional picks from {Duke, Captain, Assassin, Captain}; the
	// repeated (Duke, Captain) is dropped, leaving five, matching game.py's
	// dedup-by-ordered-tuple. (Captain, Assassin) and
	// (Assassin, Captain) are distinct positional picks but canonicalize to
	// the same sorted hand, so exactly one pair among the five options ends
	// up Equal under NewHand's multiset comparison.
	assert.Len(t, moves, 5)

	equalPairs := 0
	for _, m := range moves {
		require.Equal(t, MoveNewHand, m.Kind)
		require.Len(t, m.Hand, 2)
	}
	for i := 0; i < len(moves); i++ {
		for j := i + 1; j < len(moves); j++ {
			if moves[i].Equal(moves[j]) {
				equalPairs++
			}
		}
	}
	assert.Equal(t, 1, equalPairs)
}

// Scenario 6: coup past a knocked-out seat.
func TestNextPlayer_SkipsKnockedOutSeat(t *testing.T) {
	s := setupRaw(4)
	s.knockedOut[2] = true
	assert.Equal(t, 3, s.nextPlayer(1))
}

func TestNewState_DealsTwoCardsAndTwoCoinsEach(t *testing.T) {
	s := newSeededState(t, 3)
	assert.Equal(t, 1, s.PlayerToMove())
	for p := 1; p <= 3; p++ {
		assert.Len(t, s.Hand(p), 2)
		assert.Equal(t, 2, s.Coins(p))
	}
	assert.Empty(t, s.Hand(EnvironmentPlayer))
}

func TestNewState_RejectsOutOfRangePlayerCount(t *testing.T) {
	assert.Panics(t, func() { NewState(1, rand.New(rand.NewSource(1))) })
	assert.Panics(t, func() { NewState(7, rand.New(rand.NewSource(1))) })
}

func TestApplyMove_RejectsIllegalMove(t *testing.T) {
	s := setupRaw(2)
	s.hands[1] = []Role{Duke, Captain}
	s.hands[2] = []Role{Ambassador, Contessa}

	err := s.ApplyMove(AllowMove())
	require.Error(t, err)
	var illegal *IllegalMoveError
	require.ErrorAs(t, err, &illegal)
}

func TestResult_EnvironmentPlayerNeverWins(t *testing.T) {
	s := setupRaw(2)
	assert.Equal(t, 0, s.Result(EnvironmentPlayer))
}
