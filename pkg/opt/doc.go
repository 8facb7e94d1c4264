// Package opt provides a minimal Option[T] that holds either a present,
// non-absent value or nothing. A defined Option can never hold an absent
// value, which keeps presence checks and equality trivial.
//
// Highlights:
// - Some/None/Of: construct options, Of turning absent values into None
// - IsDefined/IsEmpty: presence tests
// - Get/GetOrElse/Unpack: read the value back out
package opt
