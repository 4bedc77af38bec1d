// Package primitive adapts the failures of low-level conversions (number and
// bool parsing, integer narrowing, UTF-8/UTF-16 decoding, formatting,
// exclusive access) to contract.Error.
//
// Every adapter is a small value type that embeds contract.ShareSafe, has a
// fixed description and no cause. The producers in this package (ParseInt,
// Narrow, DecodeUTF16, Cell.TryBorrow, ...) return them as plain errors.
package primitive

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/next-trace/scg-errbox/contract"
)

// IntErrorKind tells why an integer failed to parse.
type IntErrorKind int

const (
	IntInvalidDigit IntErrorKind = iota
	IntEmpty
	IntPosOverflow
	IntNegOverflow
)

// ParseIntError is returned when text is not a valid integer of the requested size.
type ParseIntError struct {
	contract.ShareSafe
	contract.NoCause
	Kind  IntErrorKind
	Input string
}

func (e ParseIntError) Description() string {
	switch e.Kind {
	case IntEmpty:
		return "cannot parse integer from empty string"
	case IntPosOverflow:
		return "number too large to fit in target type"
	case IntNegOverflow:
		return "number too small to fit in target type"
	default:
		return "invalid digit found in string"
	}
}

func (e ParseIntError) Error() string {
	return fmt.Sprintf("%s: %q", e.Description(), e.Input)
}

// FloatErrorKind tells why a float failed to parse.
type FloatErrorKind int

const (
	FloatInvalid FloatErrorKind = iota
	FloatEmpty
	FloatRange
)

// ParseFloatError is returned when text is not a valid float.
type ParseFloatError struct {
	contract.ShareSafe
	contract.NoCause
	Kind  FloatErrorKind
	Input string
}

func (e ParseFloatError) Description() string {
	switch e.Kind {
	case FloatEmpty:
		return "cannot parse float from empty string"
	case FloatRange:
		return "float literal out of range"
	default:
		return "invalid float literal"
	}
}

func (e ParseFloatError) Error() string {
	return fmt.Sprintf("%s: %q", e.Description(), e.Input)
}

// ParseBoolError is returned when text is not a recognised boolean.
type ParseBoolError struct {
	contract.ShareSafe
	contract.NoCause
	Input string
}

func (ParseBoolError) Description() string { return "failed to parse bool" }

func (e ParseBoolError) Error() string {
	return fmt.Sprintf("failed to parse bool: %q", e.Input)
}

var (
	_ contract.Shareable = ParseIntError{}
	_ contract.Shareable = ParseFloatError{}
	_ contract.Shareable = ParseBoolError{}
)

// ParseInt is strconv.ParseInt with failures reported as ParseIntError.
func ParseInt(s string, base, bitSize int) (int64, error) {
	v, err := strconv.ParseInt(s, base, bitSize)
	if err != nil {
		return 0, intError(s, err)
	}

	return v, nil
}

// ParseUint is strconv.ParseUint with failures reported as ParseIntError.
func ParseUint(s string, base, bitSize int) (uint64, error) {
	v, err := strconv.ParseUint(s, base, bitSize)
	if err != nil {
		return 0, intError(s, err)
	}

	return v, nil
}

// Atoi is strconv.Atoi with failures reported as ParseIntError.
func Atoi(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, intError(s, err)
	}

	return v, nil
}

// ParseFloat is strconv.ParseFloat with failures reported as ParseFloatError.
func ParseFloat(s string, bitSize int) (float64, error) {
	v, err := strconv.ParseFloat(s, bitSize)
	if err != nil {
		return 0, floatError(s, err)
	}

	return v, nil
}

// ParseBool is strconv.ParseBool with failures reported as ParseBoolError.
func ParseBool(s string) (bool, error) {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, ParseBoolError{Input: s}
	}

	return v, nil
}

// Adapt converts a *strconv.NumError (possibly wrapped) into the matching
// adapter. It reports false for anything else.
func Adapt(err error) (contract.Error, bool) {
	var ne *strconv.NumError
	if !errors.As(err, &ne) {
		return nil, false
	}

	switch ne.Func {
	case "ParseInt", "ParseUint", "Atoi":
		return intError(ne.Num, ne), true
	case "ParseFloat":
		return floatError(ne.Num, ne), true
	case "ParseBool":
		return ParseBoolError{Input: ne.Num}, true
	default:
		return nil, false
	}
}

func intError(s string, err error) ParseIntError {
	e := ParseIntError{Kind: IntInvalidDigit, Input: s}

	switch {
	case s == "":
		e.Kind = IntEmpty
	case errors.Is(err, strconv.ErrRange):
		e.Kind = IntPosOverflow
		if strings.HasPrefix(s, "-") {
			e.Kind = IntNegOverflow
		}
	}

	return e
}

func floatError(s string, err error) ParseFloatError {
	e := ParseFloatError{Kind: FloatInvalid, Input: s}

	switch {
	case s == "":
		e.Kind = FloatEmpty
	case errors.Is(err, strconv.ErrRange):
		e.Kind = FloatRange
	}

	return e
}
