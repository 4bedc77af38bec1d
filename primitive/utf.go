package primitive

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/next-trace/scg-errbox/contract"
)

// UTF8Error reports where a byte view stopped being valid UTF-8.
//
// ErrorLen is the length of the invalid sequence, or 0 when the input ended
// in the middle of a sequence.
type UTF8Error struct {
	contract.ShareSafe
	contract.NoCause
	ValidUpTo int
	ErrorLen  int
}

func (UTF8Error) Description() string { return "invalid utf-8: corrupt contents" }

func (e UTF8Error) Error() string {
	if e.ErrorLen == 0 {
		return fmt.Sprintf("incomplete utf-8 byte sequence from index %d", e.ValidUpTo)
	}

	return fmt.Sprintf("invalid utf-8 sequence of %d bytes from index %d", e.ErrorLen, e.ValidUpTo)
}

// FromUTF8Error is returned by StringFromUTF8 and hands the rejected bytes back.
type FromUTF8Error struct {
	contract.ShareSafe
	contract.NoCause
	bytes []byte
	err   UTF8Error
}

func (FromUTF8Error) Description() string { return "invalid utf-8" }

func (e FromUTF8Error) Error() string { return e.err.Error() }

// Bytes returns the input that failed to convert.
func (e FromUTF8Error) Bytes() []byte { return e.bytes }

// UTF8Error returns the position details of the failure.
func (e FromUTF8Error) UTF8Error() UTF8Error { return e.err }

// FromUTF16Error is returned when UTF-16 input contains an unpaired surrogate.
type FromUTF16Error struct {
	contract.ShareSafe
	contract.NoCause
}

func (FromUTF16Error) Description() string { return "invalid utf-16" }

func (FromUTF16Error) Error() string { return "invalid utf-16: lone surrogate found" }

var (
	_ contract.Shareable = UTF8Error{}
	_ contract.Shareable = FromUTF8Error{}
	_ contract.Shareable = FromUTF16Error{}
)

// DecodeUTF8 validates b and returns it as a string.
func DecodeUTF8(b []byte) (string, error) {
	if err, ok := validateUTF8(b); !ok {
		return "", err
	}

	return string(b), nil
}

// StringFromUTF8 is DecodeUTF8 for callers that own b: on failure the bytes
// are returned inside the error instead of being lost.
func StringFromUTF8(b []byte) (string, error) {
	if err, ok := validateUTF8(b); !ok {
		return "", FromUTF8Error{bytes: b, err: err}
	}

	return string(b), nil
}

func validateUTF8(b []byte) (UTF8Error, bool) {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return UTF8Error{ValidUpTo: i, ErrorLen: invalidPrefixLen(b[i:])}, false
		}

		i += size
	}

	return UTF8Error{}, true
}

// invalidPrefixLen returns the length of the longest prefix of b that could
// start a valid sequence, or 0 when b ends before such a prefix is complete.
// b must not begin with a valid sequence.
func invalidPrefixLen(b []byte) int {
	width, lo, hi := sequenceBounds(b[0])
	if width == 0 {
		return 1
	}

	n := 1
	for ; n < width; n++ {
		if n >= len(b) {
			return 0
		}

		c := b[n]
		if (n == 1 && (c < lo || c > hi)) || (n > 1 && (c < 0x80 || c > 0xbf)) {
			return n
		}
	}

	return n
}

// sequenceBounds returns the sequence width announced by a leading byte and
// the range allowed for the byte after it. Width 0 marks a byte that cannot
// lead a sequence.
func sequenceBounds(c byte) (width int, lo, hi byte) {
	switch {
	case c >= 0xc2 && c <= 0xdf:
		return 2, 0x80, 0xbf
	case c == 0xe0:
		return 3, 0xa0, 0xbf
	case c >= 0xe1 && c <= 0xec, c == 0xee, c == 0xef:
		return 3, 0x80, 0xbf
	case c == 0xed:
		return 3, 0x80, 0x9f
	case c == 0xf0:
		return 4, 0x90, 0xbf
	case c >= 0xf1 && c <= 0xf3:
		return 4, 0x80, 0xbf
	case c == 0xf4:
		return 4, 0x80, 0x8f
	default:
		return 0, 0, 0
	}
}

// DecodeUTF16 decodes u, failing on the first unpaired surrogate.
func DecodeUTF16(u []uint16) (string, error) {
	var sb strings.Builder

	sb.Grow(len(u))

	for i := 0; i < len(u); i++ {
		r := rune(u[i])
		if !utf16.IsSurrogate(r) {
			sb.WriteRune(r)
			continue
		}

		if i+1 >= len(u) {
			return "", FromUTF16Error{}
		}

		dec := utf16.DecodeRune(r, rune(u[i+1]))
		if dec == utf8.RuneError {
			return "", FromUTF16Error{}
		}

		sb.WriteRune(dec)
		i++
	}

	return sb.String(), nil
}
