package reconcile

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrScheduleReleased is returned by ReconcileSchedule when Stripe no longer
// reports a current phase. It is an expected end state, not a failure.
var ErrScheduleReleased = errors.New("subscription schedule released")

// MissingPriceReferenceError means a schedule phase points at a price that is
// not cached locally. Nothing of the schedule is written.
type MissingPriceReferenceError struct {
	ScheduleID string
	PriceID    string
}

func (e *MissingPriceReferenceError) Error() string {
	if e.PriceID == "" {
		return fmt.Sprintf("schedule %s has a phase without a price", e.ScheduleID)
	}
	return fmt.Sprintf("schedule %s references unknown price %s", e.ScheduleID, e.PriceID)
}

// ReconciliationError wraps a persistence or network failure hit while
// reconciling a Stripe object.
type ReconciliationError struct {
	Op  string
	Key string
	Err error
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
}

func (e *ReconciliationError) Unwrap() error { return e.Err }

func (e *ReconciliationError) Cause() error { return e.Err }

func reconciliationError(op, key string, err error) error {
	return &ReconciliationError{Op: op, Key: key, Err: err}
}
