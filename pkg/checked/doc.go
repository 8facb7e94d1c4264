// Package checked defines the failable function contracts consumed by the
// try package: operations that produce a result or report an error instead
// of completing.
//
// Highlights:
// - Predicate[T]: test a value, permitted to fail with an error
// - And/Or/Negate: compose predicates with short-circuit logic
// - Runnable: run a side effect, permitted to fail with an error
package checked
