package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/ib-77/rxbox/internal/telemetry"
	"github.com/ib-77/rxbox/pkg/rx"
	"github.com/ib-77/rxbox/pkg/rx/core"
)

const defaultLoopName = "loop"

type LoopConfig struct {
	// Name labels logs and metrics (default: "loop")
	Name string
	// Logger (default: logger from ctx, see telemetry.FromContext)
	Logger *slog.Logger
	// Metrics is optional
	Metrics *Metrics
	// OnPanic receives recovered task panics; nil re-raises them out of Run
	OnPanic func(err *rx.PanicError)
}

// Loop is a single fixed execution context, in the manner of a UI event loop.
// All of its Workers feed one queue, and the tasks run on the goroutine that
// calls Run.
type Loop struct {
	runner
	queue *core.Queue

	quit     chan struct{}
	quitOnce sync.Once
	running  atomic.Bool
}

func NewLoop(ctx context.Context, cfg LoopConfig) *Loop {
	name := cfg.Name
	if name == "" {
		name = defaultLoopName
	}

	logger := cfg.Logger
	if logger == nil {
		logger = telemetry.FromContext(ctx)
	}

	return &Loop{
		runner: runner{
			name:    name,
			logger:  telemetry.WithScheduler(logger, name),
			metrics: cfg.Metrics,
			onPanic: cfg.OnPanic,
		},
		queue: core.NewQueue(),
		quit:  make(chan struct{}),
	}
}

// CreateWorker returns a Worker posting to the loop queue. Since every Worker
// shares that queue, ordering holds across Workers of one Loop as well.
func (l *Loop) CreateWorker() rx.Worker {
	return rx.WorkerFunc(l.Post)
}

// Post enqueues task for the loop goroutine.
func (l *Loop) Post(task rx.Task) {
	if _, ok := l.queue.Push(task); !ok {
		l.reject(l.logger, 1)
		return
	}
	l.metrics.taskScheduled(l.name)
}

// Run executes posted tasks on the calling goroutine until Quit is called or
// ctx is done. Tasks still queued at that point are run when ctx carries
// core.WithProcessOptions(ctx, true) and discarded otherwise. A Loop runs once:
// afterwards Post rejects tasks and Run returns rx.ErrSchedulerClosed.
func (l *Loop) Run(ctx context.Context) error {
	if l.queue.IsClosed() {
		return rx.ErrSchedulerClosed
	}
	if !l.running.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	defer l.running.Store(false)

	processRemaining := core.IsProcessRemainingEnabled(ctx, false)
	l.logger.Debug("loop started", "process_remaining", processRemaining)

	core.Locomotive(ctx, l.queue, l.quit, l.run, core.StopHandlers{
		OnStop: func(ctx context.Context, pending []rx.Task) {
			if processRemaining {
				for _, task := range pending {
					l.run(task)
				}
				return
			}
			l.reject(l.logger, len(pending))
		},
	})

	select {
	case <-l.quit:
		l.logger.Debug("loop quit")
		return nil
	default:
		return ctx.Err()
	}
}

// Quit asks Run to return. Safe to call more than once and before Run.
// Tasks posted after the loop stops are dropped, so quitting mid-stream can
// drop terminal notifications that ObserveOn would have delivered on it.
func (l *Loop) Quit() {
	l.quitOnce.Do(func() {
		l.logger.Debug("loop quit requested", "pending", l.queue.Len())
		close(l.quit)
	})
}
