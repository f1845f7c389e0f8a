package coup

// LegalMoves enumerates the moves available to PlayerToMove, per the move
// alphabet table of §4.2.
func (s *State) LegalMoves() []Move {
	if s.allOpponentsKnockedOut(s.playerToMove) {
		return nil
	}

	if s.playerToMove == EnvironmentPlayer {
		return []Move{ResolveChallengeMove()}
	}

	if s.revealingInfluence {
		return s.revealMoves()
	}

	if s.choosingTarget {
		return s.targetMoves()
	}

	if s.currentBlock != "" {
		return []Move{AllowMove(), ChallengeMove()}
	}

	if s.challengingPhase {
		return s.challengeWindowMoves()
	}

	if len(s.ambassadorCards) > 0 {
		return s.ambassadorHandMoves()
	}

	if s.coins[s.playerToMove] >= 10 {
		return []Move{ActionMove(ActionCoup)}
	}

	return s.actionMenuMoves()
}

// revealMoves returns one MoveReveal per distinct role in the mover's
// hand.
func (s *State) revealMoves() []Move {
	hand := s.hands[s.playerToMove]
	moves := make([]Move, 0, len(hand))
	seen := make(map[Role]bool, len(hand))
	for _, r := range hand {
		if seen[r] {
			continue
		}
		seen[r] = true
		moves = append(moves, RevealMove(r))
	}
	return moves
}

// targetMoves returns one MoveTarget per live opponent.
func (s *State) targetMoves() []Move {
	moves := make([]Move, 0, s.numPlayers-1)
	for p := 1; p <= s.numPlayers; p++ {
		if p == s.playerToMove || s.knockedOut[p] {
			continue
		}
		moves = append(moves, TargetMove(p))
	}
	return moves
}

// challengeWindowMoves returns Allow, any still-plausible blocking roles,
// and Challenge if the action in flight may be disputed.
func (s *State) challengeWindowMoves() []Move {
	moves := []Move{AllowMove()}
	for _, r := range blockersFor[s.currentAction] {
		if s.revealed[r] < CopiesPerRole {
			moves = append(moves, BlockMove(r))
		}
	}
	if challengeableFor[s.currentAction] {
		moves = append(moves, ChallengeMove())
	}
	return moves
}

// ambassadorHandMoves returns the hand choices of size
// len(hand[currentActionPlayer]) drawn from the union of the actor's
// current hand and the two drawn ambassadorCards (§4.3). Candidates are
// deduped by their ordered role sequence, matching game.py:479-483's
// list(set(combinations(pool, k))): two picks naming the same roles in the
// same order collapse into one option, but two picks naming the same roles
// in a different order stay distinct, so for a pool with a repeated role
// the result can contain two options that NewHandMove's multiset
// comparison later treats as Equal. That mirrors the original's behavior
// exactly rather than collapsing it.
func (s *State) ambassadorHandMoves() []Move {
	pool := append(append([]Role(nil), s.ambassadorCards...), s.hands[s.currentActionPlayer]...)
	handSize := len(s.hands[s.currentActionPlayer])

	seen := make(map[string]bool)
	var moves []Move
	forEachCombination(pool, handSize, func(combo []Role) {
		key := combinationKey(combo)
		if seen[key] {
			return
		}
		seen[key] = true
		moves = append(moves, NewHandMove(combo))
	})
	return moves
}

// combinationKey builds an order-sensitive dedup key from combo's roles in
// the order given — it must not be called with a sorted copy, or picks
// naming the same roles in a different order would collapse into one key.
func combinationKey(combo []Role) string {
	key := make([]byte, 0, len(combo)*11)
	for _, r := range combo {
		key = append(key, []byte(r)...)
		key = append(key, 0)
	}
	return string(key)
}

// forEachCombination invokes fn once per size-k index combination of pool
// (positional combinations, as itertools.combinations produces; repeated
// role sequences are deduped by the caller).
func forEachCombination(pool []Role, k int, fn func(combo []Role)) {
	n := len(pool)
	if k < 0 || k > n {
		return
	}
	indices := make([]int, k)
	for i := range indices {
		indices[i] = i
	}
	for {
		combo := make([]Role, k)
		for i, idx := range indices {
			combo[i] = pool[idx]
		}
		fn(combo)

		i := k - 1
		for i >= 0 && indices[i] == i+n-k {
			i--
		}
		if i < 0 {
			return
		}
		indices[i]++
		for j := i + 1; j < k; j++ {
			indices[j] = indices[j-1] + 1
		}
	}
}

// actionMenuMoves returns the default turn options, gated by coin count and
// by whether all three copies of a claimed role have already been
// revealed.
func (s *State) actionMenuMoves() []Move {
	options := []ActionName{ActionIncome, ActionForeignAid, ActionDuke, ActionCaptain, ActionAmbassador}
	coins := s.coins[s.playerToMove]
	if coins >= 3 {
		options = append(options, ActionAssassin)
	}
	if coins >= 7 {
		options = append(options, ActionCoup)
	}

	moves := make([]Move, 0, len(options))
	for _, a := range options {
		if role, ok := isRoleClaim(a); ok && s.revealed[role] >= CopiesPerRole {
			continue
		}
		moves = append(moves, ActionMove(a))
	}
	return moves
}
