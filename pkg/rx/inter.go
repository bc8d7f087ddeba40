package rx

// Subscriber receives a sequence of values terminated by completion or error
type Subscriber[T any] interface {
	// OnNext delivers the next value of the sequence
	OnNext(value T)
	// OnComplete signals the successful end of the sequence
	OnComplete()
	// OnError signals the end of the sequence with a failure
	OnError(err error)
}

// Operator turns a downstream subscriber of R into an upstream subscriber of T
type Operator[R, T any] interface {
	Call(downstream Subscriber[R]) Subscriber[T]
}

// OperatorFunc adapts a plain function to Operator
type OperatorFunc[R, T any] func(downstream Subscriber[R]) Subscriber[T]

func (f OperatorFunc[R, T]) Call(downstream Subscriber[R]) Subscriber[T] {
	return f(downstream)
}

// Task is a unit of work handed to a Worker
type Task func()

// Worker runs scheduled tasks on its bound execution context.
// Tasks scheduled on the same Worker run in submission order, one at a time.
type Worker interface {
	// Schedule enqueues the task and returns without waiting for it
	Schedule(task Task)
}

// Scheduler is a factory of Workers
type Scheduler interface {
	// CreateWorker returns a fresh Worker on every call
	CreateWorker() Worker
}

// SchedulerFunc adapts a plain function to Scheduler
type SchedulerFunc func() Worker

func (f SchedulerFunc) CreateWorker() Worker {
	return f()
}

// WorkerFunc adapts a plain function to Worker
type WorkerFunc func(task Task)

func (f WorkerFunc) Schedule(task Task) {
	f(task)
}
