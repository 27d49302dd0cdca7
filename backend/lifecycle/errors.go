package lifecycle

import (
	"errors"
	"fmt"
)

// Error taxonomy for rejected operations. Every rejection carries the
// specific reason; Conflict is the only error callers are expected to
// retry (re-read, reapply).
var (
	ErrConflict                 = errors.New("report changed concurrently, re-read and retry")
	ErrNotFound                 = errors.New("not found")
	ErrDepartmentNotFound       = errors.New("department not found")
	ErrDepartmentRequired       = errors.New("approval requires a department")
	ErrWorkerDepartmentMismatch = errors.New("worker belongs to a different department")
	ErrWorkerUnavailable        = errors.New("worker is offline")
	ErrNoAvailableWorker        = errors.New("no available worker in department")

	// Not surfaced to callers: marks an already-applied completion so
	// the store can turn the retry into a no-op.
	ErrAlreadyCompleted = errors.New("report already completed")
)

// InvalidTransitionError names the current state, the requested state
// and the missing precondition.
type InvalidTransitionError struct {
	From   Status
	To     Status
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition %s -> %s: %s", e.From, e.To, e.Reason)
}

// IsInvalidTransition reports whether err is an InvalidTransitionError.
func IsInvalidTransition(err error) bool {
	var ite *InvalidTransitionError
	return errors.As(err, &ite)
}
