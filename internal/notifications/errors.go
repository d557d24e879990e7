package notifications

import (
	"fmt"
)

// DispatchError reports a failed confirmation send. Callers log it; it is
// never shown to the person who booked.
type DispatchError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *DispatchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("brevo %s: status=%d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("brevo %s: %v", e.Op, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

func dispatchErr(op string, err error) error {
	return &DispatchError{Op: op, Err: err}
}
