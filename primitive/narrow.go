package primitive

import (
	"golang.org/x/exp/constraints"

	"github.com/next-trace/scg-errbox/contract"
)

// IntConversionError is returned when an integer does not fit the target type.
type IntConversionError struct {
	contract.ShareSafe
	contract.NoCause
}

var _ contract.Shareable = IntConversionError{}

func (IntConversionError) Description() string {
	return "out of range integral type conversion attempted"
}

func (e IntConversionError) Error() string { return e.Description() }

// Narrow converts v to To, failing instead of truncating or changing sign.
func Narrow[To, From constraints.Integer](v From) (To, error) {
	t := To(v)
	if From(t) != v || (v < 0) != (t < 0) {
		return 0, IntConversionError{}
	}

	return t, nil
}
