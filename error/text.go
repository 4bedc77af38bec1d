package error

import (
	"fmt"

	"github.com/next-trace/scg-errbox/contract"
)

// TextError is the payload of handles built from plain text. Its description
// and Display text are the text verbatim.
type TextError struct {
	contract.ShareSafe
	contract.NoCause
	text string
}

var _ contract.Shareable = TextError{}

func (e TextError) Error() string       { return e.text }
func (e TextError) Description() string { return e.text }

// FromString wraps s into a handle with the strongest view, since text holds
// nothing that could not be shared.
func FromString(s string) *Handle[Shareable] {
	return FromShareable(TextError{text: s})
}

// FromBytes copies b into a string and wraps it like FromString.
func FromBytes(b []byte) *Handle[Shareable] {
	return FromString(string(b))
}

// FromStringTransferable is FromString narrowed to the transferable view.
func FromStringTransferable(s string) *Handle[Transferable] {
	return ToTransferable(FromString(s))
}

// FromStringUnmarked is FromString narrowed to the unmarked view.
func FromStringUnmarked(s string) *Handle[Unmarked] {
	return FromString(s).Erase()
}

// Errorf formats according to a format specifier and wraps the result like FromString.
// The result has no cause; use Wrap to keep one.
func Errorf(format string, args ...any) *Handle[Shareable] {
	return FromString(fmt.Sprintf(format, args...))
}
