// Package error provides an owning, type-erased handle for error values and
// safe recovery of their concrete types.
//
// Any value implementing contract.Error can be erased into a Handle and later
// inspected or recovered:
//
//	h := error.From(ParseFailure{Line: 3})
//	if error.Is[ParseFailure](h) { ... }
//	pf, rest := error.Downcast[ParseFailure](h)
//	if rest != nil {
//		// not a ParseFailure; rest is h, unchanged
//	}
//
// Key characteristics:
//   - Type tags derived from the type parameter at erasure, never authored by hand
//   - Reference, mutable and consuming downcasts; a failed consuming downcast
//     hands back the original handle untouched
//   - Views (Unmarked, Transferable, Shareable) fixed at construction and only narrowed
//   - Text conversions (FromString, FromBytes, Errorf) for ad hoc errors
//   - Wrapped errors with an optional cause, built via E and With* options
//   - Ensure/Adapt for bringing arbitrary Go errors under the capability
//   - errors.Is / errors.As see through handles via Unwrap
package error
