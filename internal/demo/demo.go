package demo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/ib-77/rxbox/internal/telemetry"
	"github.com/ib-77/rxbox/pkg/rx"
	"github.com/ib-77/rxbox/pkg/rx/core"
	"github.com/ib-77/rxbox/pkg/rx/observable"
	"github.com/ib-77/rxbox/pkg/rx/scheduler"
)

// ErrProducerFailed is what the producer reports when Config.Fail is set.
var ErrProducerFailed = errors.New("producer failed")

type Config struct {
	// Items is how many values the producer emits (default: 1)
	Items int
	// Fail makes the producer report ErrProducerFailed instead of values
	Fail bool
	// PoolSize limits concurrently running io tasks; 0 means unbounded
	PoolSize int
	// ProcessRemaining runs tasks still queued on the main loop when it stops
	ProcessRemaining bool

	Logger  *slog.Logger
	Metrics *scheduler.Metrics
}

// Report is what the terminal subscriber saw, plus where things ran.
type Report struct {
	Values    []string
	Completed bool
	Err       error

	CallerGoroutine   uint64
	ProducerGoroutine uint64
	DeliveryGoroutine []uint64
}

// Run executes the scenario and blocks the calling goroutine as the main loop
// until the stream terminates or ctx is done.
func Run(ctx context.Context, cfg Config) (Report, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = telemetry.FromContext(ctx)
	}
	items := cfg.Items
	if items <= 0 {
		items = 1
	}

	ctx = telemetry.WithLogger(ctx, logger)
	ctx = core.WithProcessOptions(core.WithWorkerOptions(ctx, cfg.PoolSize), cfg.ProcessRemaining)

	ioPool := scheduler.NewPool(ctx, scheduler.PoolConfig{Name: "io", Metrics: cfg.Metrics})
	defer func() {
		if err := ioPool.Close(ctx); err != nil {
			logger.Warn("io pool did not drain", "error", err)
		}
	}()
	mainLoop := scheduler.NewLoop(ctx, scheduler.LoopConfig{Name: "main", Metrics: cfg.Metrics})

	report := Report{CallerGoroutine: core.GoroutineID()}
	var producerGoroutine atomic.Uint64

	producer := observable.Create(func(s rx.Subscriber[string]) {
		producerGoroutine.Store(core.GoroutineID())
		logger.Info("producer subscribed", "goroutine", core.GoroutineID())

		if cfg.Fail {
			s.OnError(ErrProducerFailed)
			return
		}
		for i := range items {
			if i == 0 {
				s.OnNext("foo")
			} else {
				s.OnNext(fmt.Sprintf("foo-%d", i))
			}
		}
		s.OnComplete()
	})

	observable.SubscribeOn(producer, ioPool).
		ObserveOn(mainLoop).
		Subscribe(rx.Handlers[string]{
			Next: func(value string) {
				logger.Info("onNext", "value", value, "goroutine", core.GoroutineID())
				report.Values = append(report.Values, value)
				report.DeliveryGoroutine = append(report.DeliveryGoroutine, core.GoroutineID())
			},
			Complete: func() {
				logger.Info("onComplete", "goroutine", core.GoroutineID())
				report.Completed = true
				report.DeliveryGoroutine = append(report.DeliveryGoroutine, core.GoroutineID())
				mainLoop.Quit()
			},
			Error: func(err error) {
				logger.Error("onError", "error", err, "goroutine", core.GoroutineID())
				report.Err = err
				report.DeliveryGoroutine = append(report.DeliveryGoroutine, core.GoroutineID())
				mainLoop.Quit()
			},
		})

	if err := mainLoop.Run(ctx); err != nil {
		return report, fmt.Errorf("run main loop: %w", err)
	}

	report.ProducerGoroutine = producerGoroutine.Load()
	return report, nil
}
