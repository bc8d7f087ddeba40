package observable

import "github.com/ib-77/rxbox/pkg/rx"

// Lift returns an Observable that, once subscribed with a downstream
// Subscriber[R], asks operator for the upstream Subscriber[T] and runs the
// producer of o with it.
func Lift[T, R any](o Observable[T], operator rx.Operator[R, T]) Observable[R] {
	return Create(func(subscriber rx.Subscriber[R]) {
		o.onSubscribe(operator.Call(subscriber))
	})
}
