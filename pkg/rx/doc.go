// Package rx defines the capability sets of the reactive core: Subscriber,
// Operator, Scheduler and Worker, plus the Notification value used to
// materialize a sequence. Construction and composition of streams live in
// package observable; reference schedulers live in package scheduler.
package rx
