// Package contract exposes the minimal error capability used by other packages.
//
// Any value implementing Error can be captured behind an owning handle from the
// error package, inspected through Description and Cause, and later recovered
// into its concrete type.
package contract

// Error is the minimal, stable surface every participating error value implements.
//
// Implementations must:
//   - Render full, human-readable detail via Error() (may span several lines).
//   - Return a short, stable Description() with no newline and no trailing
//     punctuation, so callers can embed it in a larger sentence.
//   - Return the lower-level cause from Cause(), or nil when there is none.
//     Return an untyped nil, never a typed nil pointer.
//
// Debug rendering is whatever fmt produces for the concrete value with %#v.
type Error interface {
	error
	Description() string
	Cause() Error
}

// NoCause provides the default Cause for errors that do not wrap anything.
// Embed it in a concrete error type.
type NoCause struct{}

// Cause always returns nil.
func (NoCause) Cause() Error { return nil }
