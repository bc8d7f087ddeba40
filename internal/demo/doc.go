// Package demo runs the reference scenario: a producer emitting "foo" is
// subscribed on an io pool and observed on a main loop driven by the caller,
// and every callback logs the goroutine it ran on.
package demo
