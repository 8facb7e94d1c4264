package checked

import "errors"

// Predicate tests a value and may fail with an error instead of deciding.
type Predicate[T any] func(value T) (bool, error)

// Runnable runs a side effect and may fail with an error.
type Runnable func() error

// And returns a predicate that holds when both p and that hold. Evaluation
// short-circuits: that is not consulted when p fails or does not hold.
func (p Predicate[T]) And(that Predicate[T]) Predicate[T] {
	requireThat(that)
	return func(value T) (bool, error) {
		holds, err := p(value)
		if err != nil || !holds {
			return false, err
		}
		return that(value)
	}
}

// Or returns a predicate that holds when either p or that holds. Evaluation
// short-circuits: that is not consulted when p fails or holds.
func (p Predicate[T]) Or(that Predicate[T]) Predicate[T] {
	requireThat(that)
	return func(value T) (bool, error) {
		holds, err := p(value)
		if err != nil || holds {
			return holds, err
		}
		return that(value)
	}
}

// Negate returns a predicate with the inverted decision. Errors pass
// through unchanged.
func (p Predicate[T]) Negate() Predicate[T] {
	return func(value T) (bool, error) {
		holds, err := p(value)
		if err != nil {
			return false, err
		}
		return !holds, nil
	}
}

func requireThat[T any](that Predicate[T]) {
	if that == nil {
		panic(errors.New("checked: that is nil"))
	}
}
