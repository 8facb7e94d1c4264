package try

import (
	"errors"

	"github.com/davidmoten/vavr/internal/refutil"
)

// ErrPredicateNotHold is wrapped by the failure Filter produces when its
// predicate decides against the value.
var ErrPredicateNotHold = errors.New("predicate does not hold")

// InvalidArgError is the panic value raised when a required function
// argument is nil. The check runs before any variant-dependent branching.
type InvalidArgError struct {
	Param string
}

func (e *InvalidArgError) Error() string {
	return "try: " + e.Param + " is nil"
}

// GetError is the panic value of Get on a Failure. Cause carries the
// original failure cause, which may itself be nil.
type GetError struct {
	Cause error
}

func (e *GetError) Error() string {
	if refutil.IsNil(e.Cause) {
		return "try: Get on Failure"
	}
	return "try: Get on Failure: " + e.Cause.Error()
}

func (e *GetError) Unwrap() error {
	return e.Cause
}

// UnsupportedError is the panic value of operations that have no meaning
// on the variant they were called on, such as Cause on a Success.
type UnsupportedError struct {
	Op string
}

func (e *UnsupportedError) Error() string {
	return "try: unsupported operation: " + e.Op
}

// requireArg panics with an InvalidArgError when fn is nil. fn is passed
// through an interface, so typed nil functions are caught as well.
func requireArg(fn any, name string) {
	if refutil.IsNil(fn) {
		panic(&InvalidArgError{Param: name})
	}
}
