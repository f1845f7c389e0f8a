package coup

// RandomizeFor returns a clone of s in which every hand other than
// observer's has been replaced by a uniformly random re-deal consistent
// with what observer can see: the observer's own hand, plus the public
// revealed pile, are held fixed; everything else is redrawn from the
// unseen multiset and redistributed preserving each opponent's hand size
// (§4.1, single-observer determinization).
func (s *State) RandomizeFor(observer int) *State {
	d := s.Clone()

	revealed := make(map[Role]int, len(d.revealed))
	for r, c := range d.revealed {
		revealed[r] = c
	}

	// An observer who is mid-exchange also sees their own drawn
	// ambassador cards, so those are not in the pool either.
	seen := [][]Role{d.hands[observer]}
	if len(d.ambassadorCards) > 0 && d.currentActionPlayer == observer {
		seen = append(seen, d.ambassadorCards)
	}
	hidden := make(map[Role]int, len(Roles))
	for r, c := range unseenCounts(revealed, seen...) {
		hidden[r] = c
	}

	order := make([]int, 0, d.numPlayers)
	sizes := make([]int, 0, d.numPlayers)
	for p := 1; p <= d.numPlayers; p++ {
		if p == observer {
			continue
		}
		order = append(order, p)
		sizes = append(sizes, len(d.hands[p]))
	}
	// The ambassador's drawn-but-undecided cards are hidden from every
	// other player exactly like a hand; fold them into the same reshuffle
	// when the actor being re-dealt is not the observer.
	ambassadorSize := 0
	if len(d.ambassadorCards) > 0 && d.currentActionPlayer != observer {
		ambassadorSize = len(d.ambassadorCards)
	}

	total := ambassadorSize
	for _, n := range sizes {
		total += n
	}
	pool := drawN(d.rng, hidden, total)

	if ambassadorSize > 0 {
		d.ambassadorCards = append([]Role(nil), pool[:ambassadorSize]...)
		pool = pool[ambassadorSize:]
	}
	for i, p := range order {
		d.hands[p] = append([]Role(nil), pool[:sizes[i]]...)
		pool = pool[sizes[i]:]
	}

	return d
}

// SelfDeterminize returns a clone of s in which every player's hand,
// including the searcher's own and any undecided ambassador draw, is
// discarded and re-dealt from the global unseen multiset: the full deck
// less only the public revealed pile. Unlike RandomizeFor, there is no
// privileged observer whose hand is held fixed — this is the re-deal
// game.py:160-185's CloneAndSelfDeterminize performs, and it is what keeps
// the split variant's self-determinized iterations (§4.5) from leaking the
// searcher's true hand into the search as if it were public information
// (strategy fusion).
func (s *State) SelfDeterminize() *State {
	d := s.Clone()

	revealed := make(map[Role]int, len(d.revealed))
	for r, c := range d.revealed {
		revealed[r] = c
	}
	hidden := unseenCounts(revealed)

	order := make([]int, 0, d.numPlayers)
	sizes := make([]int, 0, d.numPlayers)
	for p := 1; p <= d.numPlayers; p++ {
		order = append(order, p)
		sizes = append(sizes, len(d.hands[p]))
	}

	ambassadorSize := len(d.ambassadorCards)
	total := ambassadorSize
	for _, n := range sizes {
		total += n
	}
	pool := drawN(d.rng, hidden, total)

	if ambassadorSize > 0 {
		d.ambassadorCards = append([]Role(nil), pool[:ambassadorSize]...)
		pool = pool[ambassadorSize:]
	}
	for i, p := range order {
		d.hands[p] = append([]Role(nil), pool[:sizes[i]]...)
		pool = pool[sizes[i]:]
	}

	return d
}
