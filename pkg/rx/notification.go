package rx

import (
	"time"

	"github.com/google/uuid"
)

type Kind int

const (
	KindNext Kind = iota
	KindComplete
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindNext:
		return "next"
	case KindComplete:
		return "complete"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Notification is one materialized signal of a sequence
type Notification[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	kind      Kind
	value     T
	err       error
}

func Next[T any](value T) Notification[T] {
	return Notification[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		kind:      KindNext,
		value:     value,
	}
}

func Complete[T any]() Notification[T] {
	return Notification[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		kind:      KindComplete,
	}
}

func Error[T any](err error) Notification[T] {
	return Notification[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		kind:      KindError,
		err:       err,
	}
}

// Accept replays the notification onto s
func (n Notification[T]) Accept(s Subscriber[T]) {
	switch n.kind {
	case KindNext:
		s.OnNext(n.value)
	case KindComplete:
		s.OnComplete()
	case KindError:
		s.OnError(n.err)
	}
}

func (n Notification[T]) Kind() Kind {
	return n.kind
}

func (n Notification[T]) Value() T {
	return n.value
}

func (n Notification[T]) Err() error {
	return n.err
}

func (n Notification[T]) IsNext() bool {
	return n.kind == KindNext
}

func (n Notification[T]) IsComplete() bool {
	return n.kind == KindComplete
}

func (n Notification[T]) IsError() bool {
	return n.kind == KindError
}

// IsTerminal reports whether n ends its sequence
func (n Notification[T]) IsTerminal() bool {
	return n.kind != KindNext
}

func (n Notification[T]) CreatedAt() time.Time {
	return n.createdAt
}

func (n Notification[T]) Id() uuid.UUID {
	return n.id
}
