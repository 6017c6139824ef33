package value

import "strconv"

// Number holds the verbatim text of a JSON numeric literal.
//
// The text is never normalized: exponents, trailing zeros and sign survive a
// parse/stringify round-trip exactly as written. Numeric conversion happens
// lazily, on demand, with a caller-supplied fallback instead of an error.
type Number struct {
	repr string
}

// Repr returns the stored literal text.
func (n Number) Repr() string {
	return n.repr
}

// Float64Or parses the literal as a float64 using locale-independent
// conversion.
//
// Parameters:
//   - fallback: Value returned when the text is not a complete float literal
//
// Returns:
//   - float64: Parsed value, or fallback if parsing fails or leaves
//     unconsumed characters
func (n Number) Float64Or(fallback float64) float64 {
	f, err := strconv.ParseFloat(n.repr, 64)
	if err != nil {
		return fallback
	}

	return f
}

// Int64Or parses the literal as a base-10 signed 64-bit integer.
//
// Parameters:
//   - fallback: Value returned when the text is not a complete integer
//     literal or falls outside the int64 range
//
// Returns:
//   - int64: Parsed value, or fallback on partial parse, overflow or
//     non-numeric text
func (n Number) Int64Or(fallback int64) int64 {
	i, err := strconv.ParseInt(n.repr, 10, 64)
	if err != nil {
		return fallback
	}

	return i
}

// IsIntegral reports whether the entire literal is a base-10 integer: an
// optional leading '-' followed by one or more digits, with no decimal point
// or exponent. Range is not checked; "9999999999999999999999" is integral
// even though it overflows int64.
func (n Number) IsIntegral() bool {
	s := n.repr
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
