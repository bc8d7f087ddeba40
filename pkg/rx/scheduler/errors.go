package scheduler

import "errors"

var (
	// ErrLoopRunning is returned by Run when another goroutine already drives the loop.
	ErrLoopRunning = errors.New("loop already running")
)
