// Package cli holds the cobra commands of the rxbox binary.
//
// Commands are built by factory functions (NewDemoCmd) that receive an
// outputFn closure, so Output is created after persistent flags are parsed.
//
//   - demo: run the io/main scenario of package demo and print what the
//     subscriber received; optionally serve scheduler metrics on /metrics
//
// Data goes to stdout, logs go through slog.
package cli
