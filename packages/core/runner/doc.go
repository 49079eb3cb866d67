// Package runner executes registered test routines sequentially and
// aggregates their outcomes.
//
// Routines are registered explicitly on a Suite; the runner never
// discovers them. Before a routine runs, its markers are consulted:
// skip prevents execution, name overrides the display name, xfail
// inverts the expected outcome, serial is always satisfied because
// execution is strictly sequential.
//
// A routine fails by returning a *check.Failure. Any other non-nil
// error is a configuration error and aborts the run.
package runner
