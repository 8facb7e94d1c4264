package try

import (
	"errors"
	"fmt"

	"github.com/davidmoten/vavr/internal/refutil"
	"github.com/davidmoten/vavr/pkg/checked"
)

// Type-changing combinators are package functions because methods cannot
// introduce type parameters. Same-type combinators live on Result[T].
// Every operation validates its function arguments before branching on
// the variant, so a nil argument fails identically on both.

// Map applies mapper to the success value, capturing a returned error or
// recovered non-fatal panic as a Failure. A Failure passes through with
// its cause unchanged and mapper never runs.
func Map[T, U any](r Result[T], mapper func(value T) (U, error)) (res Result[U]) {
	requireArg(mapper, "mapper")
	if !r.ok {
		return failureFrom[T, U](r)
	}
	defer capture(&res)
	return From(mapper(r.value))
}

// FlatMap applies mapper to the success value and returns its Result
// literally, the zero Result included. A recovered non-fatal panic
// becomes a Failure. A Failure passes through with its cause unchanged
// and mapper never runs.
func FlatMap[T, U any](r Result[T], mapper func(value T) Result[U]) (res Result[U]) {
	requireArg(mapper, "mapper")
	if !r.ok {
		return failureFrom[T, U](r)
	}
	defer capture(&res)
	return mapper(r.value)
}

// Fold reduces r to a plain value, applying exactly one handler depending
// on the variant. Nothing is captured: handler failures propagate.
func Fold[T, U any](r Result[T], onFailure func(cause error) U, onSuccess func(value T) U) U {
	requireArg(onFailure, "onFailure")
	requireArg(onSuccess, "onSuccess")
	if r.ok {
		return onSuccess(r.value)
	}
	return onFailure(r.cause)
}

// Transform rebuilds r through the handler matching its variant. The
// chosen handler runs guarded: its non-fatal panic becomes a Failure.
func Transform[T, U any](r Result[T], onFailure func(cause error) Result[U], onSuccess func(value T) Result[U]) (res Result[U]) {
	requireArg(onFailure, "onFailure")
	requireArg(onSuccess, "onSuccess")
	defer capture(&res)
	if r.ok {
		return onSuccess(r.value)
	}
	return onFailure(r.cause)
}

// Recover narrows a Failure back to a Success when its cause matches X by
// errors.As assignability, wrapped causes included. Instantiating X as
// error recovers any non-nil cause. Non-matching failures and successes
// pass through unchanged. The recovery function runs unguarded: a failing
// recovery is itself exceptional and propagates.
func Recover[X error, T any](r Result[T], recovery func(cause X) T) Result[T] {
	requireArg(recovery, "recovery")
	if r.ok {
		return r
	}
	var cause X
	if !errors.As(r.cause, &cause) {
		return r
	}
	return Success(recovery(cause))
}

// RecoverWith is Recover with a Result-returning recovery function, used
// literally. Unlike Recover the recovery runs guarded, so its non-fatal
// panic becomes a Failure.
func RecoverWith[X error, T any](r Result[T], recovery func(cause X) Result[T]) (res Result[T]) {
	requireArg(recovery, "recovery")
	if r.ok {
		return r
	}
	var cause X
	if !errors.As(r.cause, &cause) {
		return r
	}
	defer capture(&res)
	return recovery(cause)
}

// Failed inverts r: a Failure becomes a Success of its cause, while a
// Success becomes a Failure flagging the missing cause. Inverting twice
// does not restore the original.
func Failed[T any](r Result[T]) Result[error] {
	if r.ok {
		return Failure[error](&UnsupportedError{Op: "Success.Failed()"})
	}
	return Success(r.cause)
}

// Filter keeps a Success whose value the predicate accepts. A rejected
// value becomes a Failure wrapping ErrPredicateNotHold, and a predicate
// error or recovered non-fatal panic becomes a Failure. A Failure passes
// through and the predicate never runs.
func (r Result[T]) Filter(predicate checked.Predicate[T]) (res Result[T]) {
	requireArg(predicate, "predicate")
	if !r.ok {
		return r
	}
	defer capture(&res)
	holds, err := predicate(r.value)
	if err != nil {
		return Failure[T](err)
	}
	if !holds {
		return Failure[T](fmt.Errorf("%w for %s", ErrPredicateNotHold, refutil.Format(r.value)))
	}
	return r
}

// MapFailure replaces the cause of a Failure through mapper. The outcome
// is always another Failure: a normal return becomes the new cause and a
// recovered non-fatal panic becomes the cause instead. A Success passes
// through and mapper never runs. A fatal new cause re-propagates.
func (r Result[T]) MapFailure(mapper func(cause error) error) (res Result[T]) {
	requireArg(mapper, "mapper")
	if r.ok {
		return r
	}
	defer capture(&res)
	return Failure[T](mapper(r.cause))
}

// OrElse returns r unchanged on a Success. On a Failure it asks supplier
// for a replacement Result, used literally; a recovered non-fatal panic
// becomes a Failure.
func (r Result[T]) OrElse(supplier func() Result[T]) (res Result[T]) {
	requireArg(supplier, "supplier")
	if r.ok {
		return r
	}
	defer capture(&res)
	return supplier()
}

// OnSuccess runs action on the success value and returns r unchanged.
// Nothing is captured: an inspection failure is a programmer error and
// propagates, fatal or not.
func (r Result[T]) OnSuccess(action func(value T)) Result[T] {
	requireArg(action, "action")
	if r.ok {
		action(r.value)
	}
	return r
}

// OnFailure runs action on the failure cause and returns r unchanged.
// Nothing is captured, as with OnSuccess.
func (r Result[T]) OnFailure(action func(cause error)) Result[T] {
	requireArg(action, "action")
	if !r.ok {
		action(r.cause)
	}
	return r
}
