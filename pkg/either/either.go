package either

import "github.com/davidmoten/vavr/internal/refutil"

// Either holds exactly one of a left or a right value. The zero value is a
// Left holding L's zero.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left constructs an Either holding a left value.
func Left[L, R any](left L) Either[L, R] {
	return Either[L, R]{left: left}
}

// Right constructs an Either holding a right value.
func Right[L, R any](right R) Either[L, R] {
	return Either[L, R]{right: right, isRight: true}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Left returns the left value and whether this Either holds one.
func (e Either[L, R]) Left() (L, bool) {
	return e.left, !e.isRight
}

// Right returns the right value and whether this Either holds one.
func (e Either[L, R]) Right() (R, bool) {
	return e.right, e.isRight
}

// Swap exchanges the sides: a Left becomes a Right and vice versa.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

// Fold reduces e to a single value, applying exactly one of onLeft and
// onRight depending on the side held.
func Fold[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return "Right(" + refutil.Format(e.right) + ")"
	}
	return "Left(" + refutil.Format(e.left) + ")"
}
