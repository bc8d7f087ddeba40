package observable

import "github.com/ib-77/rxbox/pkg/rx"

// OperatorObserveOn replays every notification to the downstream subscriber
// as a task on a single Worker, so delivery keeps its order and context.
type OperatorObserveOn[T any] struct {
	scheduler rx.Scheduler
}

func NewOperatorObserveOn[T any](scheduler rx.Scheduler) OperatorObserveOn[T] {
	return OperatorObserveOn[T]{scheduler: scheduler}
}

func (op OperatorObserveOn[T]) Call(downstream rx.Subscriber[T]) rx.Subscriber[T] {
	return &observeOnSubscriber[T]{
		downstream: downstream,
		worker:     op.scheduler.CreateWorker(),
	}
}

type observeOnSubscriber[T any] struct {
	downstream rx.Subscriber[T]
	worker     rx.Worker
}

func (s *observeOnSubscriber[T]) deliver(n rx.Notification[T]) {
	s.worker.Schedule(func() {
		n.Accept(s.downstream)
	})
}

func (s *observeOnSubscriber[T]) OnNext(value T) {
	s.deliver(rx.Next(value))
}

func (s *observeOnSubscriber[T]) OnComplete() {
	s.deliver(rx.Complete[T]())
}

func (s *observeOnSubscriber[T]) OnError(err error) {
	s.deliver(rx.Error[T](err))
}
