package try

import (
	"reflect"

	"github.com/cespare/xxhash/v2"

	"github.com/davidmoten/vavr/internal/refutil"
	"github.com/davidmoten/vavr/pkg/checked"
)

// Result is an immutable container holding the outcome of an operation:
// either a success value or a failure cause. Exactly one side is
// meaningful; reading the other is a contract violation, not a nil
// result. Either side may legitimately hold an absent value.
//
// The zero value is a Failure with a nil cause. Combinators return new
// Results rather than mutating, so instances may be shared freely.
type Result[T any] struct {
	value T
	cause error
	ok    bool
}

// Success wraps value verbatim, which may be absent. Never runs user code.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Failure wraps cause verbatim, which may be nil. Never runs user code.
// A fatal cause is re-raised instead of stored.
func Failure[T any](cause error) Result[T] {
	if IsFatal(cause) {
		panic(cause)
	}
	return Result[T]{cause: cause}
}

// Of runs callable and captures its outcome: a Success of the returned
// value, or a Failure of the returned error or recovered non-fatal panic.
// Fatal conditions re-propagate unwrapped.
func Of[T any](callable func() (T, error)) (res Result[T]) {
	requireArg(callable, "callable")
	defer capture(&res)
	return From(callable())
}

// Run executes runnable and captures its outcome the way Of does. Normal
// completion yields a Success holding the absent value.
func Run(runnable checked.Runnable) (res Result[any]) {
	requireArg(runnable, "runnable")
	defer capture(&res)
	if err := runnable(); err != nil {
		return Failure[any](err)
	}
	return Success[any](nil)
}

// From adapts a (value, error) pair in Go's two-value convention: a
// non-nil err yields a Failure, otherwise a Success of value. A fatal err
// is re-raised instead of stored.
func From[T any](value T, err error) Result[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(value)
}

// failureFrom re-types a failure, carrying the cause across unchanged.
func failureFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{cause: from.cause}
}

// Get returns the success value. On a Failure it panics with a GetError
// carrying the original cause, nil cause included.
func (r Result[T]) Get() T {
	if !r.ok {
		panic(&GetError{Cause: r.cause})
	}
	return r.value
}

// Cause returns the failure cause, which may be nil. On a Success it
// panics with an UnsupportedError.
func (r Result[T]) Cause() error {
	if r.ok {
		panic(&UnsupportedError{Op: "Success.Cause()"})
	}
	return r.cause
}

func (r Result[T]) IsSuccess() bool {
	return r.ok
}

func (r Result[T]) IsFailure() bool {
	return !r.ok
}

// GetOrElse returns the success value, or other on a Failure.
func (r Result[T]) GetOrElse(other T) T {
	if !r.ok {
		return other
	}
	return r.value
}

// GetOrElseGet returns the success value, or the supplier's result on a
// Failure. The supplier sees nothing of the cause and runs unguarded.
func (r Result[T]) GetOrElseGet(supplier func() T) T {
	requireArg(supplier, "supplier")
	if !r.ok {
		return supplier()
	}
	return r.value
}

// GetOrPanic returns the success value. On a Failure it panics with the
// error translate produces from the cause. translate runs unguarded.
func (r Result[T]) GetOrPanic(translate func(cause error) error) T {
	requireArg(translate, "translate")
	if !r.ok {
		panic(translate(r.cause))
	}
	return r.value
}

// Unwrap returns the outcome in Go's two-value convention: the success
// value with a nil error, or the zero value with the failure cause.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.cause
}

// Equal reports structural equality per variant: Success values compare
// deeply, Failure causes compare by identity because error values are
// rarely meaningfully equatable. A Success never equals a Failure.
func (r Result[T]) Equal(other Result[T]) bool {
	if r.ok != other.ok {
		return false
	}
	if r.ok {
		return reflect.DeepEqual(r.value, other.value)
	}
	if refutil.IsNil(r.cause) || refutil.IsNil(other.cause) {
		return refutil.IsNil(r.cause) && refutil.IsNil(other.cause)
	}
	if !reflect.TypeOf(r.cause).Comparable() {
		return false
	}
	return r.cause == other.cause
}

// Hash returns a digest of the held payload only, so results equal by
// Equal hash alike regardless of how they were constructed. An absent
// payload hashes to zero.
func (r Result[T]) Hash() uint64 {
	var payload any
	if r.ok {
		payload = r.value
	} else {
		payload = r.cause
	}
	if refutil.IsNil(payload) {
		return 0
	}
	return xxhash.Sum64String(refutil.Format(payload))
}

// String renders as Success(<value>) or Failure(<cause>), with absent
// payloads rendered as null.
func (r Result[T]) String() string {
	if r.ok {
		return "Success(" + refutil.Format(r.value) + ")"
	}
	return "Failure(" + refutil.Format(r.cause) + ")"
}
