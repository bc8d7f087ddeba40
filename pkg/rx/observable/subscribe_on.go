package observable

import "github.com/ib-77/rxbox/pkg/rx"

// OperatorSubscribeOn receives the upstream Observable as a single value and
// subscribes to it later on a Worker.
type OperatorSubscribeOn[T any] struct {
	scheduler rx.Scheduler
}

func NewOperatorSubscribeOn[T any](scheduler rx.Scheduler) OperatorSubscribeOn[T] {
	return OperatorSubscribeOn[T]{scheduler: scheduler}
}

func (op OperatorSubscribeOn[T]) Call(downstream rx.Subscriber[T]) rx.Subscriber[Observable[T]] {
	return &subscribeOnSubscriber[T]{
		downstream: downstream,
		worker:     op.scheduler.CreateWorker(),
	}
}

type subscribeOnSubscriber[T any] struct {
	downstream rx.Subscriber[T]
	worker     rx.Worker
}

func (s *subscribeOnSubscriber[T]) OnNext(inner Observable[T]) {
	s.worker.Schedule(func() {
		inner.Subscribe(s.downstream)
	})
}

// OnComplete belongs to the wrapper only; the inner subscription reports its own.
func (s *subscribeOnSubscriber[T]) OnComplete() {}

// OnError is forwarded on the current goroutine, not rescheduled.
func (s *subscribeOnSubscriber[T]) OnError(err error) {
	s.downstream.OnError(err)
}
