package observable

import "github.com/ib-77/rxbox/pkg/rx"

// OnSubscribe is the producer behind an Observable
type OnSubscribe[T any] func(subscriber rx.Subscriber[T])

// Observable is an immutable, lazy description of a producer
type Observable[T any] struct {
	onSubscribe OnSubscribe[T]
}

// Create wraps producer without calling it
func Create[T any](producer OnSubscribe[T]) Observable[T] {
	return Observable[T]{onSubscribe: producer}
}

// Just emits value and completes on the subscribing goroutine
func Just[T any](value T) Observable[T] {
	return Create(func(subscriber rx.Subscriber[T]) {
		subscriber.OnNext(value)
		subscriber.OnComplete()
	})
}

// Fail emits err and nothing else
func Fail[T any](err error) Observable[T] {
	return Create(func(subscriber rx.Subscriber[T]) {
		subscriber.OnError(err)
	})
}

// FromSlice emits values in order and completes
func FromSlice[T any](values ...T) Observable[T] {
	return Create(func(subscriber rx.Subscriber[T]) {
		for _, v := range values {
			subscriber.OnNext(v)
		}
		subscriber.OnComplete()
	})
}

// Subscribe runs the producer with subscriber on the calling goroutine
func (o Observable[T]) Subscribe(subscriber rx.Subscriber[T]) {
	o.onSubscribe(subscriber)
}

// Lift is the same-type form of the package level Lift
func (o Observable[T]) Lift(operator rx.Operator[T, T]) Observable[T] {
	return Lift(o, operator)
}

// SubscribeOn moves the act of subscribing, and so the producer of o, onto a
// Worker of scheduler. It is a function rather than a method because it
// instantiates Observable[Observable[T]].
func SubscribeOn[T any](o Observable[T], scheduler rx.Scheduler) Observable[T] {
	return Lift[Observable[T], T](Just(o), NewOperatorSubscribeOn[T](scheduler))
}

// ObserveOn delivers every notification to the downstream subscriber through
// one Worker of scheduler.
func (o Observable[T]) ObserveOn(scheduler rx.Scheduler) Observable[T] {
	return Lift[T, T](o, NewOperatorObserveOn[T](scheduler))
}
