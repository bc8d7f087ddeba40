package core

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ib-77/rxbox/pkg/rx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocomotive_RunsInOrderUntilStopped(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	q := NewQueue()
	stop := make(chan struct{})
	var got []int
	done := make(chan struct{})

	go func() {
		defer close(done)
		Locomotive(ctx, q, stop, func(task rx.Task) { task() }, StopHandlers{})
	}()

	var wg sync.WaitGroup
	wg.Add(10)
	for i := range 10 {
		q.Push(func() {
			got = append(got, i)
			wg.Done()
		})
	}
	wg.Wait()
	close(stop)

	select {
	case <-done:
	case <-ctx.Done():
		t.Fatal("locomotive did not stop")
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
	assert.True(t, q.IsClosed())
}

func TestLocomotive_HandsPendingToOnStop(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	q := NewQueue()
	q.Push(func() {})
	q.Push(func() {})

	var pending []rx.Task
	Locomotive(ctx, q, nil, func(task rx.Task) {
		t.Error("no task should run on a cancelled context")
	}, StopHandlers{
		OnStop: func(ctx context.Context, rest []rx.Task) {
			pending = rest
		},
	})

	require.Len(t, pending, 2)
}
