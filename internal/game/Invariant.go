package game

import (
	"errors"
	"fmt"
)

// ErrInvariantViolation is returned when an entity's observed state
// diverges from its mandated default.
var ErrInvariantViolation = errors.New("invariant violation")

func newInvariantViolation(what string, got int, want int) error {
	return fmt.Errorf("%w: %s is %d, want %d", ErrInvariantViolation, what, got, want)
}
