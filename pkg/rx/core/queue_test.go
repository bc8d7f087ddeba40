package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_PushReportsIdleToBusy(t *testing.T) {
	t.Parallel()
	q := NewQueue()

	start, ok := q.Push(func() {})
	require.True(t, ok)
	assert.True(t, start, "first push must ask the caller to drain")

	start, ok = q.Push(func() {})
	require.True(t, ok)
	assert.False(t, start, "queue is already busy")

	_, ok = q.Next()
	require.True(t, ok)
	_, ok = q.Next()
	require.True(t, ok)
	_, ok = q.Next()
	require.False(t, ok, "drained queue turns idle")

	start, _ = q.Push(func() {})
	assert.True(t, start, "push after idle must start a new drain")
}

func TestQueue_FIFO(t *testing.T) {
	t.Parallel()
	q := NewQueue()

	var got []int
	for i := range 5 {
		q.Push(func() { got = append(got, i) })
	}

	for {
		task, ok := q.Next()
		if !ok {
			break
		}
		task()
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestQueue_CloseReturnsPendingAndRejects(t *testing.T) {
	t.Parallel()
	q := NewQueue()
	q.Push(func() {})
	q.Push(func() {})

	pending := q.Close()
	assert.Len(t, pending, 2)
	assert.True(t, q.IsClosed())
	assert.Equal(t, 0, q.Len())

	_, ok := q.Push(func() {})
	assert.False(t, ok)
}

func TestQueue_ReadySignal(t *testing.T) {
	t.Parallel()
	q := NewQueue()
	q.Push(func() {})
	q.Push(func() {})

	select {
	case <-q.Ready():
	default:
		t.Fatal("expected ready signal after push")
	}
}
