// Package money provides decimal-safe currency primitives.
//
// All arithmetic runs on shopspring decimals; values never pass
// through a native float. ParseOrZero is the defensive boundary
// between untrusted input (empty strings, partially typed numbers)
// and the arithmetic core: it never fails, it degrades to zero.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ParseOrZero constructs a decimal from an untrusted string.
// Malformed input ("", "not-a-number", "1.2.3") yields zero, never an
// error. A trailing decimal point ("12.") still parses as the typed
// value. Downstream display logic depends on always having a numeric
// value to render, so this must not be converted to an error path.
func ParseOrZero(value string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ToBaseUnits converts a major-unit amount (dollars, pounds) to
// integer base units (cents, piasters). No rounding is applied: the
// caller must round first if the value is not a multiple of 0.01.
func ToBaseUnits(major decimal.Decimal) int64 {
	return major.Mul(hundred).IntPart()
}

// ToMajorUnits converts integer base units back to a major-unit
// decimal. Exact inverse of ToBaseUnits for any integer input.
func ToMajorUnits(base int64) decimal.Decimal {
	return decimal.New(base, -2)
}
