package observable

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/rxbox/pkg/rx"
	"github.com/ib-77/rxbox/pkg/rx/core"
	"github.com/ib-77/rxbox/pkg/rx/rxtest"
	"github.com/ib-77/rxbox/pkg/rx/scheduler"
)

func TestToSlice(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	got, err := ToSlice(ctx, FromSlice(3, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, got)
}

func TestToSlice_ReturnsProducerError(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	boom := errors.New("boom")
	got, err := ToSlice(ctx, Create(func(s rx.Subscriber[int]) {
		s.OnNext(1)
		s.OnError(boom)
	}))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int{1}, got)
}

func TestToSlice_ThroughSchedulers(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	pool := scheduler.NewPool(ctx, scheduler.PoolConfig{})
	defer pool.Close(ctx)

	got, err := ToSlice(ctx, SubscribeOn(FromSlice("a", "b", "c"), pool).ObserveOn(pool))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestToSlice_ContextEndsFirst(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	never := Create(func(s rx.Subscriber[int]) {})
	_, err := ToSlice(ctx, never)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCollect_WithoutTerminal(t *testing.T) {
	t.Parallel()

	got, err := collect(context.Background(), []rx.Notification[int]{rx.Next(1), rx.Next(2)})
	assert.ErrorIs(t, err, rx.ErrNoTerminal)
	assert.Equal(t, []int{1, 2}, got)
}

func TestCollect_StopsAtTerminal(t *testing.T) {
	t.Parallel()

	got, err := collect(context.Background(), []rx.Notification[int]{rx.Next(1), rx.Complete[int](), rx.Next(2)})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got)
}

func TestToSlice_CancelledBeforeTerminalIsNotErrNoTerminal(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())

	source := make(chan int)
	t.Cleanup(func() { close(source) })
	go func() {
		source <- 1
		cancel()
	}()

	got, err := ToSlice(ctx, FromChan(context.Background(), source))
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, rx.ErrNoTerminal)
	assert.LessOrEqual(t, len(got), 1)
}

func TestToChan_Materializes(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	var kinds []rx.Kind
	for n := range ToChan(ctx, Just("foo")) {
		kinds = append(kinds, n.Kind())
	}
	assert.Equal(t, []rx.Kind{rx.KindNext, rx.KindComplete}, kinds)
}

func TestFromChan(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	rec := rxtest.NewRecorder[int]()
	FromChan(ctx, core.ToChanMany(ctx, []int{1, 2, 3})).Subscribe(rec)

	assert.Equal(t, []int{1, 2, 3}, rec.Values())
	assert.Equal(t, 1, rec.CompleteCount())
}

func TestFromChan_ContextError(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := rxtest.NewRecorder[int]()
	FromChan(ctx, make(chan int)).Subscribe(rec)

	require.Len(t, rec.Errors(), 1)
	assert.ErrorIs(t, rec.Errors()[0], context.Canceled)
}
