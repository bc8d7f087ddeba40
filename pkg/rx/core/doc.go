// Package core contains scheduler plumbing: the serial task queue, the
// locomotive that drains it on a fixed goroutine, context-carried options
// and small channel helpers. It holds no stream semantics; package scheduler
// builds Workers on top of it.
package core
