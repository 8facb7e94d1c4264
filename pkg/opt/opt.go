package opt

import (
	"errors"

	"github.com/davidmoten/vavr/internal/refutil"
)

// Option holds either a present value or nothing. The zero value is None.
type Option[T any] struct {
	value   T
	defined bool
}

// Some wraps a present value. It panics when value is absent; use Of for
// values that may be absent.
func Some[T any](value T) Option[T] {
	if refutil.IsNil(value) {
		panic(errors.New("opt: value is nil"))
	}
	return Option[T]{value: value, defined: true}
}

// None returns the empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Of wraps value, mapping absent values to None.
func Of[T any](value T) Option[T] {
	if refutil.IsNil(value) {
		return None[T]()
	}
	return Option[T]{value: value, defined: true}
}

func (o Option[T]) IsDefined() bool {
	return o.defined
}

func (o Option[T]) IsEmpty() bool {
	return !o.defined
}

// Get returns the present value and panics on None.
func (o Option[T]) Get() T {
	if !o.defined {
		panic(errors.New("opt: no value present"))
	}
	return o.value
}

// GetOrElse returns the present value, or other on None.
func (o Option[T]) GetOrElse(other T) T {
	if !o.defined {
		return other
	}
	return o.value
}

// Unpack returns the value in Go's comma-ok form.
func (o Option[T]) Unpack() (T, bool) {
	return o.value, o.defined
}

func (o Option[T]) String() string {
	if !o.defined {
		return "None"
	}
	return "Some(" + refutil.Format(o.value) + ")"
}
