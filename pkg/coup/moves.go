package coup

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// MoveKind tags the variant held by a Move.
type MoveKind int

const (
	// MoveAction declares a top-level action (Income, Foreign Aid, Coup, or
	// a role claim).
	MoveAction MoveKind = iota
	// MoveBlock claims a role to block the action in flight.
	MoveBlock
	// MoveAllow lets the action (or block) in flight proceed unchallenged.
	MoveAllow
	// MoveChallenge disputes the truthfulness of the action or block player.
	MoveChallenge
	// MoveResolveChallenge is the environment player's only move.
	MoveResolveChallenge
	// MoveReveal names a role from the mover's own hand to reveal.
	MoveReveal
	// MoveTarget names the opposing player chosen for a targeted action.
	MoveTarget
	// MoveNewHand selects the mover's post-exchange hand during an
	// Ambassador exchange.
	MoveNewHand
)

// Move is the tagged move alphabet of §6: one value per legal action a
// player may take, compared by value (see Equal) rather than by the
// mixed strings/integers/tuples of the original implementation.
type Move struct {
	Kind MoveKind

	// Action is set for MoveAction; Role is set for MoveBlock and MoveReveal.
	Action ActionName
	Role   Role

	// Target is set for MoveTarget.
	Target int

	// Hand is set for MoveNewHand. Compared as a multiset: two Moves with
	// the same roles in different orders are equal.
	Hand []Role
}

func ActionMove(a ActionName) Move      { return Move{Kind: MoveAction, Action: a} }
func BlockMove(r Role) Move             { return Move{Kind: MoveBlock, Role: r} }
func AllowMove() Move                   { return Move{Kind: MoveAllow} }
func ChallengeMove() Move               { return Move{Kind: MoveChallenge} }
func ResolveChallengeMove() Move        { return Move{Kind: MoveResolveChallenge} }
func RevealMove(r Role) Move            { return Move{Kind: MoveReveal, Role: r} }
func TargetMove(p int) Move             { return Move{Kind: MoveTarget, Target: p} }
func NewHandMove(hand []Role) Move      { return Move{Kind: MoveNewHand, Hand: sortedRoles(hand)} }

func sortedRoles(roles []Role) []Role {
	out := make([]Role, len(roles))
	copy(out, roles)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Equal reports whether two moves are the same move, comparing MoveNewHand
// by multiset rather than by slice order/identity.
func (m Move) Equal(other Move) bool {
	if m.Kind != other.Kind {
		return false
	}
	switch m.Kind {
	case MoveAction:
		return m.Action == other.Action
	case MoveBlock:
		return m.Role == other.Role
	case MoveAllow, MoveChallenge, MoveResolveChallenge:
		return true
	case MoveReveal:
		return m.Role == other.Role
	case MoveTarget:
		return m.Target == other.Target
	case MoveNewHand:
		if len(m.Hand) != len(other.Hand) {
			return false
		}
		a, b := sortedRoles(m.Hand), sortedRoles(other.Hand)
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	}
	return false
}

// String renders a move the way the console driver prints it to a human.
func (m Move) String() string {
	switch m.Kind {
	case MoveAction:
		return string(m.Action)
	case MoveBlock:
		return string(m.Role)
	case MoveAllow:
		return "Allow"
	case MoveChallenge:
		return "Challenge"
	case MoveResolveChallenge:
		return "Resolve Challenge"
	case MoveReveal:
		return string(m.Role)
	case MoveTarget:
		return strconv.Itoa(m.Target)
	case MoveNewHand:
		parts := make([]string, len(m.Hand))
		for i, r := range m.Hand {
			parts[i] = string(r)
		}
		return "NewHand(" + strings.Join(parts, ",") + ")"
	default:
		return fmt.Sprintf("Move(kind=%d)", m.Kind)
	}
}

// containsMove reports whether moves contains one equal to m.
func containsMove(moves []Move, m Move) bool {
	for _, candidate := range moves {
		if candidate.Equal(m) {
			return true
		}
	}
	return false
}
