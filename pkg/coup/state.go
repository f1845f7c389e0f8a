// Package coup implements the Coup game-state machine: legal-move
// enumeration, move application, hidden-card accounting, and the
// determinization operations ISMCTS needs to search over an information
// set rather than a single ground state.
package coup

import (
	"math/rand"
	"time"
)

// EnvironmentPlayer is the reserved player id that arbitrates challenges.
// It holds no cards and never wins.
const EnvironmentPlayer = 0

// State is a single, fully-specified (not yet hidden/revealed-split) Coup
// game state. External drivers mutate it exclusively through ApplyMove;
// the override setters (SetHand, SetCoin, SetPlayerToMove) exist for a
// human-facing driver correcting for information it has that the State
// does not, and validate rather than silently overwrite (§9, Open
// Question (a)).
type State struct {
	numPlayers    int
	playerToMove  int
	hands         map[int][]Role
	coins         map[int]int
	revealed      map[Role]int
	knockedOut    map[int]bool

	currentAction       ActionName
	currentActionPlayer int
	currentActionTarget int

	currentBlock       Role
	currentBlockPlayer int
	challenger         int

	challengingPhase   bool
	revealingInfluence bool
	choosingTarget     bool
	ambassadorCards    []Role

	rng *rand.Rand
}

// NewState constructs a fresh game: the deck is built, shuffled, and two
// cards are dealt to each of the n real players (2..6); coins are set to 2
// each; player 1 is to move first. rng may be nil, in which case a
// time-seeded source is used; pass a seeded *rand.Rand for reproducible
// games (§5).
func NewState(n int, rng *rand.Rand) *State {
	if n < 2 || n > 6 {
		panic("coup: number of real players must be between 2 and 6")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &State{
		numPlayers:   n,
		playerToMove: 1,
		hands:        make(map[int][]Role, n+1),
		coins:        make(map[int]int, n),
		revealed:     make(map[Role]int, len(Roles)),
		knockedOut:   make(map[int]bool, n),
		rng:          rng,
	}
	for _, r := range Roles {
		s.revealed[r] = 0
	}

	deck := expand(fullDeck())
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	for p := 1; p <= n; p++ {
		s.hands[p] = append([]Role(nil), deck[:2]...)
		deck = deck[2:]
		s.coins[p] = 2
		s.knockedOut[p] = false
	}
	s.hands[EnvironmentPlayer] = nil
	return s
}

// Clone returns an independent deep copy: no mutable substructure (hands,
// coin bank, revealed pile) is shared with the original. The copy shares
// the same *rand.Rand as the source — this module is single-threaded
// (§5), so the shared source just continues one deterministic stream
// across every clone spawned from it, mirroring the single global PRNG
// the original implementation drew from.
func (s *State) Clone() *State {
	c := &State{
		numPlayers:          s.numPlayers,
		playerToMove:        s.playerToMove,
		hands:               make(map[int][]Role, len(s.hands)),
		coins:               make(map[int]int, len(s.coins)),
		revealed:            make(map[Role]int, len(s.revealed)),
		knockedOut:          make(map[int]bool, len(s.knockedOut)),
		currentAction:       s.currentAction,
		currentActionPlayer: s.currentActionPlayer,
		currentActionTarget: s.currentActionTarget,
		currentBlock:        s.currentBlock,
		currentBlockPlayer:  s.currentBlockPlayer,
		challenger:          s.challenger,
		challengingPhase:    s.challengingPhase,
		revealingInfluence:  s.revealingInfluence,
		choosingTarget:      s.choosingTarget,
		ambassadorCards:     append([]Role(nil), s.ambassadorCards...),
		rng:                 s.rng,
	}
	for p, h := range s.hands {
		c.hands[p] = append([]Role(nil), h...)
	}
	for p, n := range s.coins {
		c.coins[p] = n
	}
	for r, n := range s.revealed {
		c.revealed[r] = n
	}
	for p, b := range s.knockedOut {
		c.knockedOut[p] = b
	}
	return c
}

// NumPlayers returns the number of real players (not counting the
// environment player).
func (s *State) NumPlayers() int { return s.numPlayers }

// PlayerToMove returns whose turn it is to supply the next move; 0 means
// the environment player (resolving a pending challenge).
func (s *State) PlayerToMove() int { return s.playerToMove }

// Hand returns a copy of the given player's hand.
func (s *State) Hand(player int) []Role {
	return append([]Role(nil), s.hands[player]...)
}

// Coins returns the given player's coin balance.
func (s *State) Coins(player int) int { return s.coins[player] }

// RevealedCount returns how many copies of a role have been publicly
// revealed.
func (s *State) RevealedCount(r Role) int { return s.revealed[r] }

// IsKnockedOut reports whether a player has lost all influence.
func (s *State) IsKnockedOut(player int) bool { return s.knockedOut[player] }

// nextPlayer returns the player to the left of p, skipping knocked-out
// players, restricted to the real players 1..numPlayers (§4.4). It never
// returns the environment player.
func (s *State) nextPlayer(p int) int {
	next := (p % s.numPlayers) + 1
	for next != p && s.knockedOut[next] {
		next = (next % s.numPlayers) + 1
	}
	return next
}

func (s *State) resetAction() {
	s.currentAction = ""
	s.currentActionPlayer = 0
	s.currentActionTarget = 0
	s.currentBlock = ""
	s.currentBlockPlayer = 0
	s.challenger = 0
}

// IsTerminal reports whether the game has ended: the player to move has no
// legal moves, which by construction only happens once every opponent is
// knocked out.
func (s *State) IsTerminal() bool {
	return len(s.LegalMoves()) == 0
}

// Result reports the game outcome from player's viewpoint: 1 if they are
// alive at a terminal state, 0 otherwise. The environment player always
// scores 0.
func (s *State) Result(player int) int {
	if player == EnvironmentPlayer {
		return 0
	}
	if s.knockedOut[player] {
		return 0
	}
	return 1
}

// allOpponentsKnockedOut reports whether every player other than p has
// been knocked out (the terminal condition of §4.2).
func (s *State) allOpponentsKnockedOut(p int) bool {
	for i := 1; i <= s.numPlayers; i++ {
		if i == p {
			continue
		}
		if !s.knockedOut[i] {
			return false
		}
	}
	return true
}
