package scheduler

import "github.com/ib-77/rxbox/pkg/rx"

// Immediate runs every task inline on the scheduling goroutine. It is
// synchronous by construction and meant for tests.
type Immediate struct{}

func NewImmediate() Immediate {
	return Immediate{}
}

func (Immediate) CreateWorker() rx.Worker {
	return rx.WorkerFunc(func(task rx.Task) {
		task()
	})
}
