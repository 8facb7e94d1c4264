// Package either provides a two-sided Either[L, R] holding exactly one of
// a left or a right value. By convention the right side carries the useful
// outcome and the left side carries the rejection.
//
// Highlights:
// - Left/Right: construct an Either on one side
// - IsLeft/IsRight: side tests
// - Left/Right methods: read a side back out in comma-ok form
// - Swap: exchange the sides
// - Fold: reduce both sides to a single value via handlers
package either
