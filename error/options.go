package error

import (
	"github.com/next-trace/scg-errbox/contract"
)

// Option configures a Wrapped error during construction via E() or Wrap().
type Option func(*Wrapped)

// defaultDescription is used by E when no description is given.
const defaultDescription = "error"

// WithDetail sets the human detail rendered by Error().
func WithDetail(detail string) Option { return func(e *Wrapped) { e.detail = detail } }

// WithCause sets the lower-level cause returned by Cause().
func WithCause(cause contract.Error) Option { return func(e *Wrapped) { e.cause = cause } }

// E is a minimal builder when you don't want to spell out New(...) and setters.
// Defaults: Description="error", no detail, no cause.
func E(description string, opts ...Option) *Wrapped {
	if description == "" {
		description = defaultDescription
	}

	e := &Wrapped{description: description}
	for _, o := range opts {
		o(e)
	}

	return e
}
