package coup

// ApplyMove transitions the state by carrying out move. It fails with an
// *IllegalMoveError, leaving the state unchanged, if move is not a member
// of LegalMoves(). After a successful return, exactly one of (terminal, a
// real player to move, the environment to move) holds (§3 invariant).
func (s *State) ApplyMove(move Move) error {
	legal := s.LegalMoves()
	if !containsMove(legal, move) {
		return newIllegalMove(move, s.phaseName())
	}

	switch {
	case s.revealingInfluence:
		s.applyReveal(move)
	case s.choosingTarget:
		s.applyTarget(move)
	case len(s.ambassadorCards) > 0:
		s.applyNewHand(move)
	case s.currentAction == "" && s.currentBlock == "":
		s.openAction(move)
	case s.challengingPhase && move.Kind == MoveBlock:
		s.declareBlock(move)
	default:
		s.applyResolution(move)
	}
	return nil
}

// phaseName names the active phase, for IllegalMoveError diagnostics.
func (s *State) phaseName() string {
	switch {
	case s.playerToMove == EnvironmentPlayer:
		return "resolve-challenge"
	case s.revealingInfluence:
		return "revealing-influence"
	case s.choosingTarget:
		return "choosing-target"
	case s.currentBlock != "":
		return "block-challenge-window"
	case s.challengingPhase:
		return "challenging-phase"
	case len(s.ambassadorCards) > 0:
		return "ambassador-exchange"
	default:
		return "idle"
	}
}

func (s *State) applyReveal(move Move) {
	role := move.Role
	s.hands[s.playerToMove] = removeOne(s.hands[s.playerToMove], role)
	s.revealed[role]++
	s.revealingInfluence = false

	if len(s.hands[s.playerToMove]) == 0 {
		s.knockedOut[s.playerToMove] = true
	}

	if s.currentBlock != "" {
		if s.playerToMove == s.currentBlockPlayer {
			s.currentBlock = ""
			s.currentBlockPlayer = 0
			s.enactAction(s.currentAction)
			return
		}
	} else if s.currentAction != "" && s.currentAction != ActionCoup {
		if s.playerToMove == s.challenger {
			s.playerToMove = s.currentActionPlayer
			s.enactAction(s.currentAction)
			return
		}
	}

	s.playerToMove = s.nextPlayer(s.currentActionPlayer)
	s.resetAction()
}

func (s *State) applyTarget(move Move) {
	s.currentActionTarget = move.Target
	s.choosingTarget = false
	if s.currentAction == ActionCoup {
		s.enactAction(s.currentAction)
		return
	}
	s.playerToMove = s.currentActionTarget
	s.challengingPhase = true
}

func (s *State) applyNewHand(move Move) {
	s.hands[s.currentActionPlayer] = append([]Role(nil), move.Hand...)
	s.ambassadorCards = nil
	s.playerToMove = s.nextPlayer(s.currentActionPlayer)
	s.resetAction()
}

func (s *State) openAction(move Move) {
	s.currentAction = move.Action
	s.currentActionPlayer = s.playerToMove

	// Assassin's fee is paid up front: it is lost even if the action is
	// blocked or a challenge against the actor succeeds (§4.3).
	if move.Action == ActionAssassin {
		s.coins[s.currentActionPlayer] -= 3
	}

	switch {
	case targetedFor[move.Action]:
		s.choosingTarget = true
	case hasChallengeOrBlockWindow(move.Action):
		s.challengingPhase = true
		s.playerToMove = s.nextPlayer(s.playerToMove)
	default:
		s.enactAction(move.Action)
	}
}

func (s *State) declareBlock(move Move) {
	s.challengingPhase = false
	s.currentBlock = move.Role
	s.currentBlockPlayer = s.playerToMove
	s.playerToMove = s.currentActionPlayer
}

// applyResolution dispatches Allow, Challenge, and Resolve Challenge, the
// three moves not otherwise handled by a more specific phase above.
func (s *State) applyResolution(move Move) {
	switch move.Kind {
	case MoveAllow:
		s.doAllow()
	case MoveChallenge:
		s.doChallenge()
	case MoveResolveChallenge:
		s.doResolveChallenge()
	}
}

func (s *State) doAllow() {
	s.playerToMove = s.nextPlayer(s.playerToMove)

	if s.currentBlock != "" {
		if s.playerToMove == s.currentBlockPlayer {
			s.playerToMove = s.nextPlayer(s.playerToMove)
		}
		if s.playerToMove == s.currentActionPlayer {
			s.playerToMove = s.nextPlayer(s.currentActionPlayer)
			s.resetAction()
		}
		return
	}

	if !s.challengingPhase {
		return
	}

	if s.currentActionTarget != 0 {
		if s.playerToMove == s.currentActionPlayer {
			s.playerToMove = s.nextPlayer(s.playerToMove)
		}
		if s.playerToMove == s.currentActionTarget {
			s.challengingPhase = false
			s.enactAction(s.currentAction)
		}
		return
	}

	if s.playerToMove == s.currentActionPlayer {
		s.challengingPhase = false
		s.enactAction(s.currentAction)
	}
}

func (s *State) doChallenge() {
	s.challenger = s.playerToMove
	s.challengingPhase = false
	s.playerToMove = EnvironmentPlayer
}

// doResolveChallenge arbitrates the pending challenge by checking the
// challenged player's actual hand. External drivers running a
// human-observed game must call SetHand beforehand to correct the state
// for information they learned out of band (a human reveal); a
// self-play search never needs to, since the un-determinized state
// already holds the truth (§4.3).
func (s *State) doResolveChallenge() {
	if s.currentBlock != "" {
		truthful := containsRole(s.hands[s.currentBlockPlayer], s.currentBlock)
		if truthful {
			s.playerToMove = s.challenger
			s.hands[s.currentBlockPlayer] = removeOne(s.hands[s.currentBlockPlayer], s.currentBlock)
			s.hands[s.currentBlockPlayer] = append(s.hands[s.currentBlockPlayer], s.dealFromDeck(1)...)
		} else {
			s.playerToMove = s.currentBlockPlayer
		}
		s.challengingPhase = false
		s.revealingInfluence = true
		return
	}

	role, _ := isRoleClaim(s.currentAction)
	truthful := containsRole(s.hands[s.currentActionPlayer], role)
	s.challengingPhase = false
	s.revealingInfluence = true
	if truthful {
		s.playerToMove = s.challenger
		s.hands[s.currentActionPlayer] = removeOne(s.hands[s.currentActionPlayer], role)
		s.hands[s.currentActionPlayer] = append(s.hands[s.currentActionPlayer], s.dealFromDeck(1)...)
	} else {
		s.playerToMove = s.currentActionPlayer
	}
}

// enactAction carries out the effect of a successfully-established action
// (§4.3's "Enactment effects" table).
func (s *State) enactAction(a ActionName) {
	switch a {
	case ActionIncome:
		s.doIncome()
	case ActionForeignAid:
		s.doForeignAid()
	case ActionCoup:
		s.doCoup()
	case ActionDuke:
		s.doDuke()
	case ActionCaptain:
		s.doCaptain()
	case ActionAssassin:
		s.doAssassin()
	case ActionAmbassador:
		s.doAmbassador()
	}
}

func (s *State) doIncome() {
	s.coins[s.currentActionPlayer]++
	s.playerToMove = s.nextPlayer(s.currentActionPlayer)
	s.resetAction()
}

func (s *State) doForeignAid() {
	s.coins[s.currentActionPlayer] += 2
	s.playerToMove = s.nextPlayer(s.currentActionPlayer)
	s.resetAction()
}

func (s *State) doDuke() {
	s.coins[s.currentActionPlayer] += 3
	s.playerToMove = s.nextPlayer(s.currentActionPlayer)
	s.resetAction()
}

func (s *State) doCoup() {
	s.coins[s.currentActionPlayer] -= 7
	s.playerToMove = s.currentActionTarget
	s.revealingInfluence = true
}

func (s *State) doCaptain() {
	stolen := s.coins[s.currentActionTarget]
	if stolen > 2 {
		stolen = 2
	}
	s.coins[s.currentActionTarget] -= stolen
	s.coins[s.currentActionPlayer] += stolen
	s.playerToMove = s.nextPlayer(s.currentActionPlayer)
	s.resetAction()
}

// doAssassin enacts the assassination if the target is still alive. If the
// target already lost their last card defending against the assassination
// (blocking or challenging), the enactment is a no-op (§9, Design Note (b)).
func (s *State) doAssassin() {
	if !s.knockedOut[s.currentActionTarget] {
		s.playerToMove = s.currentActionTarget
		s.revealingInfluence = true
		return
	}
	s.playerToMove = s.nextPlayer(s.currentActionPlayer)
	s.resetAction()
}

func (s *State) doAmbassador() {
	s.ambassadorCards = s.dealFromDeck(2)
}

// dealFromDeck draws n cards uniformly from the full unseen deck (the
// deck less every revealed card and every real player's hand), matching
// the original implementation's DealFromDeck: it recomputes the residual
// deck from current hands and the revealed pile rather than tracking a
// separate deck slice.
func (s *State) dealFromDeck(n int) []Role {
	revealed := make(map[Role]int, len(s.revealed))
	for r, c := range s.revealed {
		revealed[r] = c
	}
	hands := make([][]Role, 0, s.numPlayers)
	for p := 1; p <= s.numPlayers; p++ {
		hands = append(hands, s.hands[p])
	}
	return drawN(s.rng, unseenCounts(revealed, hands...), n)
}

func removeOne(hand []Role, r Role) []Role {
	out := make([]Role, 0, len(hand))
	removed := false
	for _, c := range hand {
		if !removed && c == r {
			removed = true
			continue
		}
		out = append(out, c)
	}
	return out
}

func containsRole(hand []Role, r Role) bool {
	for _, c := range hand {
		if c == r {
			return true
		}
	}
	return false
}
