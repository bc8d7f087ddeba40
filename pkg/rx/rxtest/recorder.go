// Package rxtest provides test helpers for code built on package rx.
package rxtest

import (
	"context"
	"sync"

	"github.com/ib-77/rxbox/pkg/rx"
)

// Recorder is a Subscriber that keeps every notification it receives. It is
// safe to read from other goroutines while notifications arrive.
type Recorder[T any] struct {
	// OnRecord, when set, is called on the delivering goroutine after each notification is stored
	OnRecord func(n rx.Notification[T])

	mu            sync.Mutex
	notifications []rx.Notification[T]
	terminated    chan struct{}
	once          sync.Once
}

func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{terminated: make(chan struct{})}
}

func (r *Recorder[T]) OnNext(value T) {
	r.record(rx.Next(value))
}

func (r *Recorder[T]) OnComplete() {
	r.record(rx.Complete[T]())
}

func (r *Recorder[T]) OnError(err error) {
	r.record(rx.Error[T](err))
}

func (r *Recorder[T]) record(n rx.Notification[T]) {
	r.mu.Lock()
	r.notifications = append(r.notifications, n)
	r.mu.Unlock()

	if r.OnRecord != nil {
		r.OnRecord(n)
	}
	if n.IsTerminal() {
		r.once.Do(func() { close(r.terminated) })
	}
}

// Done is closed after the first terminal notification.
func (r *Recorder[T]) Done() <-chan struct{} {
	return r.terminated
}

// Wait blocks until a terminal notification arrived or ctx is done.
func (r *Recorder[T]) Wait(ctx context.Context) error {
	select {
	case <-r.terminated:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Recorder[T]) Notifications() []rx.Notification[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]rx.Notification[T], len(r.notifications))
	copy(out, r.notifications)
	return out
}

func (r *Recorder[T]) Values() []T {
	values := make([]T, 0)
	for _, n := range r.Notifications() {
		if n.IsNext() {
			values = append(values, n.Value())
		}
	}
	return values
}

func (r *Recorder[T]) Kinds() []rx.Kind {
	var kinds []rx.Kind
	for _, n := range r.Notifications() {
		kinds = append(kinds, n.Kind())
	}
	return kinds
}

// Errors returns every error delivered, in order.
func (r *Recorder[T]) Errors() []error {
	var errs []error
	for _, n := range r.Notifications() {
		if n.IsError() {
			errs = append(errs, n.Err())
		}
	}
	return errs
}

func (r *Recorder[T]) CompleteCount() int {
	count := 0
	for _, n := range r.Notifications() {
		if n.IsComplete() {
			count++
		}
	}
	return count
}
