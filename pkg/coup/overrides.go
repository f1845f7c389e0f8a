package coup

// SetHand overwrites player's hand with hand, after validating that doing
// so cannot violate the three-copies-per-role invariant: hand's roles,
// plus every other player's known hand, plus the revealed pile, must not
// exceed CopiesPerRole of any role. This exists for a human-facing driver
// that has learned a player's true hand (e.g. by watching a live reveal)
// and needs to correct the State to match (§9, Open Question (a)); a
// self-play search never calls it, since its states are never missing
// this information to begin with.
func (s *State) SetHand(player int, hand []Role) error {
	if s.knockedOut[player] && len(hand) > 0 {
		return newInvariantViolation("cannot give cards to a knocked-out player")
	}
	counts := make(map[Role]int, len(Roles))
	for r, c := range s.revealed {
		counts[r] = c
	}
	for p, h := range s.hands {
		if p == player {
			continue
		}
		for _, r := range h {
			counts[r]++
		}
	}
	for _, r := range s.ambassadorCards {
		if s.currentActionPlayer != player {
			counts[r]++
		}
	}
	for _, r := range hand {
		counts[r]++
		if counts[r] > CopiesPerRole {
			return newInvariantViolation("setting hand would exceed the three copies of " + string(r))
		}
	}
	s.hands[player] = append([]Role(nil), hand...)
	return nil
}

// SetCoin overwrites player's coin balance. Negative balances are
// rejected; Coup's game never produces one through ApplyMove, so a
// negative value can only arrive from a driver error.
func (s *State) SetCoin(player int, coins int) error {
	if coins < 0 {
		return newInvariantViolation("coin balance cannot be negative")
	}
	s.coins[player] = coins
	return nil
}

// SetPlayerToMove overwrites whose turn it is. The target must be the
// environment player, a live real player within range, or — if any phase
// flag is set — a player still eligible to supply that phase's moves;
// callers correcting a desynced State are expected to clear phase flags
// themselves first via a fresh ApplyMove sequence if they mean to hand
// the turn to an unrelated player outright.
func (s *State) SetPlayerToMove(player int) error {
	if player == EnvironmentPlayer {
		s.playerToMove = player
		return nil
	}
	if player < 1 || player > s.numPlayers {
		return newInvariantViolation("player out of range")
	}
	if s.knockedOut[player] {
		return newInvariantViolation("cannot hand the move to a knocked-out player")
	}
	s.playerToMove = player
	return nil
}
