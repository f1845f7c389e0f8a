package coup

import "math/rand"

// fullDeck returns the composition of a complete Coup deck: three copies of
// each of the five roles, fifteen cards total.
func fullDeck() map[Role]int {
	counts := make(map[Role]int, len(Roles))
	for _, r := range Roles {
		counts[r] = CopiesPerRole
	}
	return counts
}

// unseenCounts computes the multiset of cards not visible to an observer:
// the full deck, less every revealed card, less the cards in hands the
// observer can see. Passing a nil visibleHands slice yields the deck with
// only the revealed pile subtracted (the "no observer" case of §4.1).
func unseenCounts(revealed map[Role]int, visibleHands ...[]Role) map[Role]int {
	counts := fullDeck()
	for role, n := range revealed {
		counts[role] -= n
	}
	for _, hand := range visibleHands {
		for _, r := range hand {
			counts[r]--
		}
	}
	return counts
}

// expand turns a role->count multiset into a flat slice, one entry per
// card, for shuffling and dealing.
func expand(counts map[Role]int) []Role {
	out := make([]Role, 0, 15)
	for _, r := range Roles {
		for i := 0; i < counts[r]; i++ {
			out = append(out, r)
		}
	}
	return out
}

// drawN shuffles the given card multiset with rng and returns a copy of the
// first n cards; the remainder is discarded. It panics if n
// exceeds the number of available cards — callers are expected to only
// call this when the three-of-each-role invariant guarantees enough cards
// remain; external-driver overrides that would violate this are rejected
// before reaching here (see InvariantViolationError).
func drawN(rng *rand.Rand, counts map[Role]int, n int) []Role {
	deck := expand(counts)
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	if n > len(deck) {
		panic("coup: draw exceeds unseen deck size")
	}
	return append([]Role(nil), deck[:n]...)
}
