package core

import (
	"context"

	"github.com/ib-77/rxbox/pkg/rx"
)

type StopHandlers struct {
	// OnStop receives the tasks that were still queued when the locomotive stopped
	OnStop func(ctx context.Context, pending []rx.Task)
}

// Locomotive runs tasks from q on the calling goroutine, in order, until ctx
// is done or stop is closed. The queue is closed on the way out.
func Locomotive(ctx context.Context, q *Queue, stop <-chan struct{},
	run func(task rx.Task), handlers StopHandlers) {

	halt := func() {
		pending := q.Close()
		if handlers.OnStop != nil {
			handlers.OnStop(ctx, pending)
		}
	}

	for {
		for {
			select {
			case <-ctx.Done():
				halt()
				return
			case <-stop:
				halt()
				return
			default:
			}

			task, ok := q.Next()
			if !ok {
				break
			}
			run(task)
		}

		select {
		case <-ctx.Done():
			halt()
			return
		case <-stop:
			halt()
			return
		case <-q.Ready():
		}
	}
}
