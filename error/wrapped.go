package error

import (
	"fmt"

	"github.com/next-trace/scg-errbox/contract"
)

// Wrapped is a general purpose adapter error: a short description, an
// optional longer detail and an optional lower-level cause.
//
// Fields:
//   - description: short, stable text (no newline, no trailing punctuation)
//   - detail:      optional human detail rendered by Error() instead of the description
//   - cause:       the lower-level error that produced this one, if any
type Wrapped struct {
	description string
	detail      string
	cause       contract.Error
}

// compile-time guarantee that *Wrapped implements contract.Error
var _ contract.Error = (*Wrapped)(nil)

// ------ standard error interface

func (e *Wrapped) Error() string {
	if e == nil {
		return "<nil>"
	}

	msg := e.description
	if e.detail != "" {
		msg = e.detail
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.cause)
	}

	return msg
}

func (e *Wrapped) Unwrap() error {
	if e == nil || e.cause == nil {
		return nil
	}

	return e.cause
}

// ------ contract.Error

func (e *Wrapped) Description() string {
	if e == nil {
		return "<nil>"
	}

	return e.description
}

func (e *Wrapped) Cause() contract.Error {
	if e == nil {
		return nil
	}

	return e.cause
}

// Detail returns the optional human detail, empty when none was set.
func (e *Wrapped) Detail() string {
	if e == nil {
		return ""
	}

	return e.detail
}

// New creates a Wrapped error with the given description.
// The optional cause parameter (if provided) is exposed via Cause() and Unwrap().
func New(description string, cause ...contract.Error) *Wrapped {
	e := &Wrapped{description: description}
	if len(cause) > 0 {
		e.cause = cause[0]
	}

	return e
}
