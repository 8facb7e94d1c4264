// Package try contains a deferred-computation Result[T] that captures the
// outcome of an operation as either a success value or a failure cause.
// Its combinators transform and inspect the outcome and recover from
// failures without manual branching at the call site.
//
// Highlights:
// - Of/Run/From: wrap callables, runnables and (value, error) pairs
// - Success/Failure: construct a Result[T] directly
// - Map/FlatMap: move from Result[T] to Result[U]
// - Filter: turn a success into a failure when a predicate does not hold
// - Recover/RecoverWith: narrow failures back to successes by cause type
// - Fold/Transform: reduce both variants via handlers
// - OnSuccess/OnFailure: side-effect helpers
// - ToOption/ToEither/Values: read-only views of the outcome
//
// Failures raised by user-supplied code are captured as data unless they
// classify fatal. Fatal conditions (see FatalError) always re-propagate
// unwrapped and are never stored in a Result.
package try
