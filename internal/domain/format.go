package domain

import (
	"fmt"
	"math"
	"strconv"
)

// NotAvailable is the display string for values that cannot be formatted.
const NotAvailable = "N/A"

// Notation selects a numeric display mode. Formatting only ever produces
// display strings; the underlying values used for classification are never
// altered.
type Notation string

const (
	NotationFixed      Notation = "fixed"      // 3 significant figures, fixed point
	NotationScientific Notation = "scientific" // 3 significant figures, %.2e
)

// Valid reports whether n is a known notation tag.
func (n Notation) Valid() bool {
	return n == NotationFixed || n == NotationScientific
}

// Format renders v in this notation, degrading to "N/A" for unavailable or
// non-finite values.
func (n Notation) Format(v Value) string {
	if n == NotationScientific {
		return FormatSci(v)
	}
	return FormatSig3(v)
}

// FormatSig3 renders a value to three significant figures in fixed notation.
// For |v| >= 1 the decimal places are max(0, 3-(floor(log10|v|)+1)); for
// |v| < 1 they are -floor(log10|v|)+2, keeping three significant digits
// after the leading zeros. Zero formats as "0.00".
func FormatSig3(v Value) string {
	f, ok := v.Float()
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return NotAvailable
	}
	if f == 0 {
		return "0.00"
	}

	exp := int(math.Floor(math.Log10(math.Abs(f))))
	var decimals int
	if math.Abs(f) >= 1 {
		decimals = 3 - (exp + 1)
		if decimals < 0 {
			decimals = 0
		}
	} else {
		decimals = -exp + 2
	}
	return strconv.FormatFloat(f, 'f', decimals, 64)
}

// FormatSci renders a value in scientific notation with a two-decimal
// mantissa. Zero formats as "0.00e+00".
func FormatSci(v Value) string {
	f, ok := v.Float()
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return NotAvailable
	}
	if f == 0 {
		return "0.00e+00"
	}
	return fmt.Sprintf("%.2e", f)
}
