// Package observable provides the lazy stream value Observable[T] and the
// operators that compose it.
//
// An Observable holds a single producer function and does nothing until
// Subscribe is called; every Subscribe runs the producer again from scratch.
//
// Key operations:
// - Create/Just/Fail/FromSlice/FromChan: build an Observable
// - Lift: derive a new Observable through an rx.Operator
// - SubscribeOn: run the producer on a Worker of the given Scheduler
// - ObserveOn: deliver every notification through one Worker of the given Scheduler
// - Map/Filter/Tee/Try: value operators built on Lift
// - ToSlice/ToChan: block on, or materialize, a subscription
package observable
