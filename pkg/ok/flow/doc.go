// Package flow folds an ordered sequence of named steps into a growing
// key-value context, stopping at the first failing step and reporting which
// step failed and why.
//
// Each run is independent: the context grows copy-on-write, so a captured
// failure never observes later mutation, and concurrent runs share nothing.
// Steps execute synchronously, exactly once, at the point they are reached.
//
// Key operations:
// - New/From/Start/StartWith: begin a run, optionally seeded or with a first step
// - Run: bind a named step's result into the context; short-circuits on failure
// - Tap: inject an uncaptured side effect without affecting the run
// - Result/Resolve/Finally: leave the run with the context, a raw value, or
//   a handler-reduced value
//
// Reusing a step name within one run panics: that is a defect in the calling
// code, not a recoverable condition.
package flow
