package scheduler

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/ib-77/rxbox/internal/telemetry"
	"github.com/ib-77/rxbox/pkg/rx"
	"github.com/ib-77/rxbox/pkg/rx/core"
)

const defaultPoolName = "pool"

type PoolConfig struct {
	// Name labels logs and metrics (default: "pool")
	Name string
	// Logger (default: logger from ctx, see telemetry.FromContext)
	Logger *slog.Logger
	// Metrics is optional
	Metrics *Metrics
	// OnPanic receives recovered task panics; nil re-raises them
	OnPanic func(err *rx.PanicError)
}

// Pool is a cached goroutine pool. Every Worker owns a serial queue; a
// goroutine is started when the queue gets its first task and exits once it
// is drained, so tasks of one Worker never overlap while different Workers run
// in parallel.
type Pool struct {
	runner
	sem *semaphore.Weighted

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewPool creates a Pool. The number of tasks running at once across all
// Workers is limited by core.WithWorkerOptions on ctx; unlimited by default.
func NewPool(ctx context.Context, cfg PoolConfig) *Pool {
	name := cfg.Name
	if name == "" {
		name = defaultPoolName
	}

	logger := cfg.Logger
	if logger == nil {
		logger = telemetry.FromContext(ctx)
	}

	p := &Pool{
		runner: runner{
			name:    name,
			logger:  telemetry.WithScheduler(logger, name),
			metrics: cfg.Metrics,
			onPanic: cfg.OnPanic,
		},
	}

	if maxConcurrent := core.GetWorkerMaxCount(ctx, 0); maxConcurrent > 0 {
		p.sem = semaphore.NewWeighted(int64(maxConcurrent))
	}

	return p
}

func (p *Pool) CreateWorker() rx.Worker {
	id := uuid.New()
	w := &poolWorker{
		pool:   p,
		id:     id,
		logger: telemetry.WithWorker(p.logger, id.String()),
		queue:  core.NewQueue(),
	}
	w.logger.Debug("worker created")
	return w
}

// Close stops accepting tasks and waits until every started Worker has
// drained its queue, or ctx is done. Tasks scheduled afterwards are dropped,
// so closing the Pool mid-stream can drop terminal notifications that
// ObserveOn would have delivered through it.
func (p *Pool) Close(ctx context.Context) error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Debug("pool closed")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pool) execute(task rx.Task) {
	if p.sem != nil {
		// Background never cancels, so Acquire only returns once a slot is free.
		_ = p.sem.Acquire(context.Background(), 1)
		defer p.sem.Release(1)
	}
	p.run(task)
}

type poolWorker struct {
	pool   *Pool
	id     uuid.UUID
	logger *slog.Logger
	queue  *core.Queue
}

func (w *poolWorker) Schedule(task rx.Task) {
	w.pool.mu.RLock()
	defer w.pool.mu.RUnlock()

	if w.pool.closed {
		w.pool.reject(w.logger, 1)
		return
	}

	start, ok := w.queue.Push(task)
	if !ok {
		w.pool.reject(w.logger, 1)
		return
	}
	w.pool.metrics.taskScheduled(w.pool.name)

	if start {
		w.pool.wg.Add(1)
		go w.drain()
	}
}

func (w *poolWorker) drain() {
	defer w.pool.wg.Done()

	ran := 0
	for {
		task, ok := w.queue.Next()
		if !ok {
			w.logger.Debug("worker drained", "tasks", ran)
			return
		}
		w.pool.execute(task)
		ran++
	}
}
