package rx

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrSchedulerClosed is reported when work reaches a scheduler that no longer accepts it
	ErrSchedulerClosed = errors.New("scheduler closed")

	// ErrNoTerminal means a sequence ended without OnComplete or OnError
	ErrNoTerminal = errors.New("sequence ended without terminal notification")
)

// IsCancellationError reports whether err comes from a cancelled or expired context
func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// PanicError carries a value recovered from a panicking task
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("task panicked: %v", e.Value)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
