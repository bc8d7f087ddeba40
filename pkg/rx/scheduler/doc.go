// Package scheduler holds reference rx.Scheduler implementations:
//
//   - Pool: cached goroutine pool, every Worker is its own serial queue
//   - Loop: one fixed goroutine (the one calling Run) shared by all Workers
//   - Immediate: runs tasks inline, for tests
//
// Pool and Loop recover task panics into *rx.PanicError, log and count them,
// and hand them to OnPanic; without OnPanic the panic is raised again.
package scheduler
