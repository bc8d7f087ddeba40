package rx

// Handlers is a Subscriber built from optional callbacks. A nil callback ignores
// the notification.
type Handlers[T any] struct {
	Next     func(value T)
	Complete func()
	Error    func(err error)
}

func (h Handlers[T]) OnNext(value T) {
	if h.Next != nil {
		h.Next(value)
	}
}

func (h Handlers[T]) OnComplete() {
	if h.Complete != nil {
		h.Complete()
	}
}

func (h Handlers[T]) OnError(err error) {
	if h.Error != nil {
		h.Error(err)
	}
}
