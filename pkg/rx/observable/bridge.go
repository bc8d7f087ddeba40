package observable

import (
	"context"
	"sync"

	"github.com/ib-77/rxbox/pkg/rx"
	"github.com/ib-77/rxbox/pkg/rx/core"
)

// FromChan emits what arrives on ch and completes when ch is closed. If ctx
// ends first the subscriber gets OnError(ctx.Err()). Every subscription reads
// from the same channel.
func FromChan[T any](ctx context.Context, ch <-chan T) Observable[T] {
	return Create(func(subscriber rx.Subscriber[T]) {
		for {
			select {
			case v, ok := <-ch:
				if !ok {
					subscriber.OnComplete()
					return
				}
				subscriber.OnNext(v)
			case <-ctx.Done():
				subscriber.OnError(ctx.Err())
				return
			}
		}
	})
}

// ToChan subscribes to o from a new goroutine and materializes its
// notifications. The channel is closed after the terminal notification, or
// when ctx is done.
func ToChan[T any](ctx context.Context, o Observable[T]) <-chan rx.Notification[T] {
	s := &chanSubscriber[T]{
		ctx:  ctx,
		out:  make(chan rx.Notification[T]),
		done: make(chan struct{}),
	}

	if ctx.Done() != nil {
		go s.watch()
	}

	go o.Subscribe(s)
	return s.out
}

// ToSlice subscribes to o and blocks until it terminates. The error is the
// one delivered by OnError, ctx.Err() when ctx ends first, or
// rx.ErrNoTerminal when the notifications stop without a terminal one.
func ToSlice[T any](ctx context.Context, o Observable[T]) ([]T, error) {
	return collect(ctx, core.FromChanMany(ctx, ToChan(ctx, o)))
}

func collect[T any](ctx context.Context, notifications []rx.Notification[T]) ([]T, error) {
	values := make([]T, 0, len(notifications))
	for _, n := range notifications {
		switch n.Kind() {
		case rx.KindNext:
			values = append(values, n.Value())
		case rx.KindError:
			return values, n.Err()
		case rx.KindComplete:
			return values, nil
		}
	}

	if err := ctx.Err(); rx.IsCancellationError(err) {
		return values, err
	}
	return values, rx.ErrNoTerminal
}

type chanSubscriber[T any] struct {
	ctx    context.Context
	out    chan rx.Notification[T]
	done   chan struct{}
	mu     sync.Mutex
	closed bool
}

func (s *chanSubscriber[T]) OnNext(value T) {
	s.emit(rx.Next(value))
}

func (s *chanSubscriber[T]) OnComplete() {
	s.emit(rx.Complete[T]())
}

func (s *chanSubscriber[T]) OnError(err error) {
	s.emit(rx.Error[T](err))
}

func (s *chanSubscriber[T]) emit(n rx.Notification[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	select {
	case s.out <- n:
		if n.IsTerminal() {
			s.closeLocked()
		}
	case <-s.ctx.Done():
		s.closeLocked()
	}
}

func (s *chanSubscriber[T]) watch() {
	select {
	case <-s.ctx.Done():
		s.mu.Lock()
		if !s.closed {
			s.closeLocked()
		}
		s.mu.Unlock()
	case <-s.done:
	}
}

func (s *chanSubscriber[T]) closeLocked() {
	s.closed = true
	close(s.out)
	close(s.done)
}
