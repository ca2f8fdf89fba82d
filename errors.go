package libtrigger

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrSchedulerClosed = errors.New("scheduler has been closed")
)

// ErrArgument describes which argument of which operation was rejected.
// It always unwraps to ErrInvalidArgument.
type ErrArgument struct {
	Op     string
	Arg    string
	Reason string
}

func (e ErrArgument) Error() string {
	return fmt.Sprintf("%s: %s: %s %s", ErrInvalidArgument, e.Op, e.Arg, e.Reason)
}

func (e ErrArgument) Unwrap() error { return ErrInvalidArgument }

func newErrArgument(op, arg, reason string) error {
	return ErrArgument{Op: op, Arg: arg, Reason: reason}
}

func validateEvent(op, event string) error {
	if event == "" {
		return newErrArgument(op, "event", "must not be empty")
	}
	return nil
}
