package enemies

import (
	"errors"
	"fmt"
)

var (
	// ErrPrecondition is matched by every *PreconditionError.
	ErrPrecondition = errors.New("precondition violated")
	// ErrUnknownEnemy is returned for IDs that were never spawned or are gone.
	ErrUnknownEnemy = errors.New("unknown enemy")
	// ErrOutsideArena is wrapped by spawn errors for positions whose hit-zones
	// would fall outside the collision space.
	ErrOutsideArena = errors.New("outside arena")
)

// PreconditionError reports an argument a Manager operation refused.
type PreconditionError struct {
	Op    string
	Field string
	Value any
	Err   error // underlying cause, may be nil
}

func (e *PreconditionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: invalid %s: %v", e.Op, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: invalid %s=%v", e.Op, e.Field, e.Value)
}

func (e *PreconditionError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrPrecondition, e.Err}
	}
	return []error{ErrPrecondition}
}
