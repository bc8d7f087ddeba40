package scheduler

import (
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/ib-77/rxbox/pkg/rx"
)

// runner is the top-level fault policy shared by Pool and Loop.
type runner struct {
	name    string
	logger  *slog.Logger
	metrics *Metrics
	onPanic func(err *rx.PanicError)
}

func (r *runner) run(task rx.Task) {
	started := time.Now()
	defer func() {
		v := recover()
		if v == nil {
			r.metrics.taskCompleted(r.name, time.Since(started))
			return
		}

		perr := &rx.PanicError{Value: v, Stack: debug.Stack()}
		r.metrics.taskPanicked(r.name)
		r.logger.Error("task panicked", "error", perr)
		if r.onPanic == nil {
			panic(perr)
		}
		r.onPanic(perr)
	}()

	task()
}

// reject drops n tasks that arrived after the scheduler stopped, logging on logger
func (r *runner) reject(logger *slog.Logger, n int) {
	if n == 0 {
		return
	}
	r.metrics.taskRejected(r.name, n)
	logger.Warn("tasks rejected", "count", n, "error", rx.ErrSchedulerClosed)
}
