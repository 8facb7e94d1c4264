package try

import (
	"errors"
	"fmt"
)

// FatalError marks error conditions that must never be captured into a
// Failure: conditions under which the surrounding execution environment
// can no longer be trusted. Every capturing operation re-raises a fatal
// condition unwrapped instead of storing it.
//
// Go has no catchable analog of resource exhaustion or linkage faults:
// running out of memory or stack aborts the process before any recover
// runs, and runtime.Goexit unwinds through recover untouched. FatalError
// is the extension point for the remaining category: host code tags its
// own unrecoverable conditions, either by implementing the interface or
// by wrapping a cause with Fatal.
type FatalError interface {
	error
	FatalError()
}

type fatalError struct {
	err error
}

func (e *fatalError) Error() string {
	return "fatal: " + e.err.Error()
}

func (e *fatalError) Unwrap() error {
	return e.err
}

func (e *fatalError) FatalError() {}

// Fatal marks err as fatal, so no capturing operation will store it.
// A nil or already fatal err is returned unchanged.
func Fatal(err error) error {
	if err == nil || IsFatal(err) {
		return err
	}
	return &fatalError{err: err}
}

// IsFatal reports whether err or anything in its wrap chain is marked
// fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var fatal FatalError
	return errors.As(err, &fatal)
}

// PanicError carries a recovered panic value that is not itself an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// capture is deferred around user-supplied code by every capturing
// operation. A recovered non-fatal panic becomes a Failure written to res;
// a fatal one is re-raised with its original value. When the goroutine is
// unwinding for another reason, such as runtime.Goexit, recover returns
// nil and the unwind continues untouched.
func capture[T any](res *Result[T]) {
	v := recover()
	if v == nil {
		return
	}
	cause := recoveredError(v)
	if IsFatal(cause) {
		panic(v)
	}
	*res = Result[T]{cause: cause}
}

func recoveredError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return &PanicError{Value: v}
}
