package core

import (
	"sync"

	"github.com/ib-77/rxbox/pkg/rx"
)

// Queue is an unbounded FIFO of tasks with a busy flag that lets exactly one
// drainer run at a time. Push never blocks.
type Queue struct {
	mu     sync.Mutex
	tasks  []rx.Task
	busy   bool
	closed bool
	ready  chan struct{}
}

func NewQueue() *Queue {
	return &Queue{ready: make(chan struct{}, 1)}
}

// Push appends task. start is true when the queue went from idle to busy and
// the caller is responsible for draining it. ok is false if the queue is closed.
func (q *Queue) Push(task rx.Task) (start bool, ok bool) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false, false
	}
	q.tasks = append(q.tasks, task)
	start = !q.busy
	q.busy = true
	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
	return start, true
}

// Next pops the oldest task. When nothing is left it marks the queue idle
// and returns false; the next Push reports start again.
func (q *Queue) Next() (rx.Task, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.tasks) == 0 {
		q.busy = false
		return nil, false
	}

	task := q.tasks[0]
	q.tasks[0] = nil
	q.tasks = q.tasks[1:]
	return task, true
}

// Ready is signalled after every successful Push.
func (q *Queue) Ready() <-chan struct{} {
	return q.ready
}

// Close rejects further pushes and hands back whatever was still queued.
func (q *Queue) Close() []rx.Task {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	rest := q.tasks
	q.tasks = nil
	return rest
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

func (q *Queue) IsClosed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}
