// Package moneyx implements a fixed-point monetary amount with two decimal
// places, stored as an integer number of cents. It avoids binary-float
// rounding issues when amounts travel between JSON and NUMERIC(10,2) columns.
package moneyx

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount is a monetary value in cents.
type Amount int64

// Parse converts a decimal string such as "42.50", "42.5" or "42" into an
// Amount. More than two fractional digits is an error.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	// Inputs like "-" or "." carry no digits at all.
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	cents := w*100 + f
	if neg {
		cents = -cents
	}
	return Amount(cents), nil
}

// FromFloat converts a float64 to an Amount, rounding to the nearest cent.
func FromFloat(f float64) Amount {
	return Amount(math.Round(f * 100))
}

// Float64 returns the amount as a float64 number of currency units.
func (a Amount) Float64() float64 {
	return float64(a) / 100
}

// String formats the amount with exactly two decimal places, e.g. "42.50".
func (a Amount) String() string {
	cents := int64(a)
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// Positive reports whether the amount is strictly greater than zero.
func (a Amount) Positive() bool {
	return a > 0
}

// MarshalJSON renders the amount as a JSON number with two decimal places.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts a JSON number (or numeric string) with at most two
// decimal places.
func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
