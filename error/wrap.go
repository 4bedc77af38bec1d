package error

import (
	"errors"
	"fmt"
	"strings"

	"github.com/next-trace/scg-errbox/contract"
)

// Wrap attaches cause to a new Wrapped error. A nil cause leaves the result without one.
func Wrap(cause contract.Error, description string, opts ...Option) *Wrapped {
	e := E(description, opts...)
	e.cause = cause

	return e
}

// Ensure converts any error to an unmarked handle.
//
// Behavior:
//   - nil input => nil output
//   - an unmarked handle => returned as-is (same pointer)
//   - a handle of a stronger view => narrowed; the input handle is left empty
//   - a contract.Error => erased, tagged with its dynamic type
//   - anything else => wrapped in a ForeignError first
func Ensure(err error) *Handle[Unmarked] {
	if err == nil {
		return nil
	}

	switch h := err.(type) {
	case *Handle[Unmarked]:
		return h
	case *Handle[Transferable]:
		return h.Erase()
	case *Handle[Shareable]:
		return h.Erase()
	}

	return From(Adapt(err))
}

// Adapt returns err as a contract.Error, wrapping it in a ForeignError when it
// does not implement the capability itself.
func Adapt(err error) contract.Error {
	if err == nil {
		return nil
	}

	if e, ok := err.(contract.Error); ok {
		return e
	}

	return ForeignError{err: err}
}

// ForeignError adapts an arbitrary Go error. Its cause chain follows Unwrap()
// (or a Cause() error method) of the adapted error.
type ForeignError struct {
	err error
}

var _ contract.Error = ForeignError{}

func (e ForeignError) Error() string { return e.err.Error() }

// Description is the first line of the adapted error's text, without trailing punctuation.
func (e ForeignError) Description() string {
	msg, _, _ := strings.Cut(e.err.Error(), "\n")

	return strings.TrimRight(strings.TrimSpace(msg), ".!?")
}

func (e ForeignError) Cause() contract.Error {
	if next := errors.Unwrap(e.err); next != nil {
		return Adapt(next)
	}

	if c, ok := e.err.(interface{ Cause() error }); ok {
		return Adapt(c.Cause())
	}

	return nil
}

func (e ForeignError) Unwrap() error { return e.err }

// Format delegates to the adapted error so its own %+v rendering (stack traces and the like) survives.
func (e ForeignError) Format(s fmt.State, verb rune) {
	if f, ok := e.err.(fmt.Formatter); ok {
		f.Format(s, verb)
		return
	}

	_, _ = fmt.Fprintf(s, fmt.FormatString(s, verb), e.err)
}
