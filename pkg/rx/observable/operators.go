package observable

import "github.com/ib-77/rxbox/pkg/rx"

// Map transforms every value
func Map[T, R any](o Observable[T], mapper func(value T) R) Observable[R] {
	return Lift[T, R](o, rx.OperatorFunc[R, T](func(downstream rx.Subscriber[R]) rx.Subscriber[T] {
		return rx.Handlers[T]{
			Next:     func(value T) { downstream.OnNext(mapper(value)) },
			Complete: downstream.OnComplete,
			Error:    downstream.OnError,
		}
	}))
}

// Filter drops values for which predicate is false
func Filter[T any](o Observable[T], predicate func(value T) bool) Observable[T] {
	return Lift[T, T](o, rx.OperatorFunc[T, T](func(downstream rx.Subscriber[T]) rx.Subscriber[T] {
		return rx.Handlers[T]{
			Next: func(value T) {
				if predicate(value) {
					downstream.OnNext(value)
				}
			},
			Complete: downstream.OnComplete,
			Error:    downstream.OnError,
		}
	}))
}

// Tee runs sideEffect on every value before passing it on unchanged
func Tee[T any](o Observable[T], sideEffect func(value T)) Observable[T] {
	return Lift[T, T](o, rx.OperatorFunc[T, T](func(downstream rx.Subscriber[T]) rx.Subscriber[T] {
		return rx.Handlers[T]{
			Next: func(value T) {
				sideEffect(value)
				downstream.OnNext(value)
			},
			Complete: downstream.OnComplete,
			Error:    downstream.OnError,
		}
	}))
}

// Try maps every value with a fallible function. The first error becomes
// OnError and whatever the upstream sends afterwards is dropped.
func Try[T, R any](o Observable[T], try func(value T) (R, error)) Observable[R] {
	return Lift[T, R](o, rx.OperatorFunc[R, T](func(downstream rx.Subscriber[R]) rx.Subscriber[T] {
		return &trySubscriber[T, R]{downstream: downstream, try: try}
	}))
}

type trySubscriber[T, R any] struct {
	downstream rx.Subscriber[R]
	try        func(value T) (R, error)
	failed     bool
}

func (s *trySubscriber[T, R]) OnNext(value T) {
	if s.failed {
		return
	}
	out, err := s.try(value)
	if err != nil {
		s.failed = true
		s.downstream.OnError(err)
		return
	}
	s.downstream.OnNext(out)
}

func (s *trySubscriber[T, R]) OnComplete() {
	if !s.failed {
		s.downstream.OnComplete()
	}
}

func (s *trySubscriber[T, R]) OnError(err error) {
	if !s.failed {
		s.downstream.OnError(err)
	}
}
