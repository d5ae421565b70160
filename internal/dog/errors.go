package dog

import "errors"

// Error kinds from §7. These are sentinel errors so callers can branch with
// errors.Is, generalized from the teacher's ad hoc fmt.Errorf messages in
// Game.HandlePlayerFold/HandlePlayerCall/etc. into a fixed, documented
// vocabulary since §7 makes error kind part of the public contract.
var (
	// ErrInvalidAction is returned when the caller-supplied action is not a
	// member of the current ListActions() result.
	ErrInvalidAction = errors.New("dog: action is not currently legal")

	// ErrDeckExhausted means both the draw and discard piles are empty; this
	// should be unreachable given the 110-card conservation invariant.
	ErrDeckExhausted = errors.New("dog: deck exhausted")

	// ErrInternalInconsistency means an action referenced a marble that does
	// not exist in the current state; this indicates an engine bug.
	ErrInternalInconsistency = errors.New("dog: internal inconsistency")
)
