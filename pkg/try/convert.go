package try

import (
	"iter"

	"github.com/davidmoten/vavr/pkg/either"
	"github.com/davidmoten/vavr/pkg/opt"
)

// ToOption narrows r to presence: None for a Failure and also for a
// Success holding an absent value, since a defined Option cannot hold
// one. The cause of a Failure is discarded.
func (r Result[T]) ToOption() opt.Option[T] {
	if !r.ok {
		return opt.None[T]()
	}
	return opt.Of(r.value)
}

// ToEither projects r onto an Either with the cause on the left and the
// value on the right.
func (r Result[T]) ToEither() either.Either[error, T] {
	if !r.ok {
		return either.Left[error, T](r.cause)
	}
	return either.Right[error](r.value)
}

// Values returns a sequence yielding the success value once, or nothing
// for a Failure. The sequence is restartable and always yields the same
// outcome because r is immutable.
func (r Result[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.ok {
			yield(r.value)
		}
	}
}
