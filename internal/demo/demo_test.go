package demo

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/rxbox/pkg/rx/scheduler"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestRun_Foo(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	report, err := Run(ctx, Config{Logger: quietLogger()})
	require.NoError(t, err)

	assert.Equal(t, []string{"foo"}, report.Values)
	assert.True(t, report.Completed)
	assert.NoError(t, report.Err)

	require.Len(t, report.DeliveryGoroutine, 2)
	for _, id := range report.DeliveryGoroutine {
		assert.Equal(t, report.CallerGoroutine, id, "delivery happens on the main loop")
	}
	assert.NotZero(t, report.ProducerGoroutine)
	assert.NotEqual(t, report.CallerGoroutine, report.ProducerGoroutine)
}

func TestRun_ManyItemsWithLimitedPool(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	reg := prometheus.NewRegistry()
	report, err := Run(ctx, Config{
		Items:    3,
		PoolSize: 1,
		Logger:   quietLogger(),
		Metrics:  scheduler.NewMetrics(reg),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "foo-1", "foo-2"}, report.Values)

	count, err := testutil.GatherAndCount(reg, "rxbox_scheduler_tasks_scheduled_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series per scheduler")
}

func TestRun_Failure(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	report, err := Run(ctx, Config{Fail: true, Logger: quietLogger()})
	require.NoError(t, err)

	assert.ErrorIs(t, report.Err, ErrProducerFailed)
	assert.False(t, report.Completed)
	assert.Empty(t, report.Values)
	assert.Len(t, report.DeliveryGoroutine, 1)
}
