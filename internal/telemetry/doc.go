// Package telemetry sets up structured logging for rxbox binaries and the
// reference schedulers.
//
//   - logging.go: slog handler from LOG_LEVEL / LOG_FORMAT, logger in context
//
// Scheduler metrics live next to the schedulers (pkg/rx/scheduler/metrics.go)
// and are exported by cmd/rxbox on /metrics.
package telemetry
