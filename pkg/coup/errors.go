package coup

import "fmt"

// IllegalMoveError is returned by ApplyMove when the move is not a member
// of the current LegalMoves set. The state is left unchanged.
type IllegalMoveError struct {
	Move  Move
	Phase string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("coup: illegal move %s in phase %s", e.Move, e.Phase)
}

// InvariantViolationError is returned by the external-driver override
// methods (SetHand, SetCoin, SetPlayerToMove) when applying the override
// would break one of the State's invariants (§3): more than three copies
// of a role in play, a knocked-out player granted a nonempty hand, a
// negative coin balance, or the move handed to an out-of-range or
// knocked-out player.
type InvariantViolationError struct {
	Reason string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("coup: invariant violation: %s", e.Reason)
}

func newIllegalMove(move Move, phase string) error {
	return &IllegalMoveError{Move: move, Phase: phase}
}

func newInvariantViolation(reason string) error {
	return &InvariantViolationError{Reason: reason}
}
