package primitive

import (
	"fmt"
	"io"

	"github.com/next-trace/scg-errbox/contract"
)

// FormatError reports that rendering output failed. It carries no detail.
type FormatError struct {
	contract.ShareSafe
	contract.NoCause
}

var _ contract.Shareable = FormatError{}

func (FormatError) Description() string {
	return "an error occurred when formatting an argument"
}

func (e FormatError) Error() string { return e.Description() }

// Fprintf is fmt.Fprintf with any write failure reported as FormatError.
func Fprintf(w io.Writer, format string, args ...any) (int, error) {
	n, err := fmt.Fprintf(w, format, args...)
	if err != nil {
		return n, FormatError{}
	}

	return n, nil
}
