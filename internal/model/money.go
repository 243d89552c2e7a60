// Package model defines the immutable domain entities for a budget snapshot.
package model

import (
	"fmt"
	"math"
	"strings"
)

// Money is an exact fixed-point currency amount stored as milliunits
// (1/1000th of the base currency unit), the unit the YNAB API uses on the
// wire. $1.23 is 1230 milliunits. Arithmetic is exact integer arithmetic;
// overflow panics rather than wrapping, since a budget that exceeds the
// int64 milliunit range (~9.2 quadrillion units) indicates corrupt input,
// not a representable balance.
type Money struct {
	milliunits int64
}

// NewMoney creates a Money value from milliunits.
func NewMoney(milliunits int64) Money {
	return Money{milliunits: milliunits}
}

// Milliunits returns the raw milliunit count.
func (m Money) Milliunits() int64 {
	return m.milliunits
}

// Add returns m + other. Panics on int64 overflow.
func (m Money) Add(other Money) Money {
	sum := m.milliunits + other.milliunits
	if (m.milliunits > 0 && other.milliunits > 0 && sum < 0) ||
		(m.milliunits < 0 && other.milliunits < 0 && sum > 0) {
		panic(fmt.Sprintf("money overflow: %d + %d", m.milliunits, other.milliunits))
	}
	return Money{milliunits: sum}
}

// Sub returns m - other. Panics on int64 overflow.
func (m Money) Sub(other Money) Money {
	return m.Add(other.Neg())
}

// Neg returns the amount with its sign flipped. Panics on the one value
// whose negation does not fit in int64.
func (m Money) Neg() Money {
	if m.milliunits == math.MinInt64 {
		panic(fmt.Sprintf("money overflow: -(%d)", m.milliunits))
	}
	return Money{milliunits: -m.milliunits}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.milliunits == 0
}

// IsPositive reports whether the amount is greater than zero (inflow).
func (m Money) IsPositive() bool {
	return m.milliunits > 0
}

// IsNegative reports whether the amount is less than zero (outflow).
func (m Money) IsNegative() bool {
	return m.milliunits < 0
}

// Cmp returns -1, 0, or +1 comparing m against other by milliunit value.
func (m Money) Cmp(other Money) int {
	switch {
	case m.milliunits < other.milliunits:
		return -1
	case m.milliunits > other.milliunits:
		return 1
	default:
		return 0
	}
}

// Sum adds a sequence of amounts. The empty sequence sums to zero.
func Sum(amounts []Money) Money {
	total := Money{}
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// Average returns the mean of a sequence of amounts, rounded to the nearest
// milliunit with ties going to the even neighbour. The empty sequence
// averages to zero; that is a documented edge case, not an error.
func Average(amounts []Money) Money {
	if len(amounts) == 0 {
		return Money{}
	}
	total := Sum(amounts)
	return Money{milliunits: divRoundHalfEven(total.milliunits, int64(len(amounts)))}
}

// divRoundHalfEven divides n by d (d > 0), rounding the quotient to the
// nearest integer with round-half-to-even tie breaking.
func divRoundHalfEven(n, d int64) int64 {
	neg := n < 0
	abs := n
	if neg {
		abs = -abs
	}

	q := abs / d
	r := abs % d

	switch {
	case 2*r > d:
		q++
	case 2*r == d && q%2 == 1:
		q++
	}

	if neg {
		return -q
	}
	return q
}

// Format renders the amount as a plain decimal string with the given number
// of fractional digits (the budget currency's precision, 0 through 3).
// Sub-milliunit precision is never requested by YNAB currencies; digits
// outside 0..3 are clamped to that range. Rounding, when the precision is
// coarser than a milliunit, is round-half-to-even.
func (m Money) Format(decimalDigits int) string {
	if decimalDigits < 0 {
		decimalDigits = 0
	}
	if decimalDigits > 3 {
		decimalDigits = 3
	}

	divisor := int64(1)
	for i := decimalDigits; i < 3; i++ {
		divisor *= 10
	}
	scaled := divRoundHalfEven(m.milliunits, divisor)

	sign := ""
	if scaled < 0 {
		sign = "-"
		scaled = -scaled
	}

	pow := int64(1)
	for i := 0; i < decimalDigits; i++ {
		pow *= 10
	}
	if decimalDigits == 0 {
		return fmt.Sprintf("%s%d", sign, scaled)
	}
	return fmt.Sprintf("%s%d.%0*d", sign, scaled/pow, decimalDigits, scaled%pow)
}

// ParseAmount parses a plain decimal string ("57.50", "-1.5", "120") into
// Money. Fractions finer than a milliunit cannot be represented exactly and
// are rejected rather than silently truncated, as are amounts outside the
// int64 milliunit range.
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, fmt.Errorf("empty amount")
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if intPart == "" && fracPart == "" {
		return Money{}, fmt.Errorf("malformed amount %q", s)
	}
	if len(fracPart) > 3 {
		return Money{}, fmt.Errorf("amount %q has sub-milliunit precision", s)
	}

	var milliunits int64
	for _, c := range intPart {
		if c < '0' || c > '9' {
			return Money{}, fmt.Errorf("malformed amount %q", s)
		}
		if milliunits > (math.MaxInt64-int64(c-'0'))/10 {
			return Money{}, fmt.Errorf("amount %q out of range", s)
		}
		milliunits = milliunits*10 + int64(c-'0')
	}
	if milliunits > math.MaxInt64/1000 {
		return Money{}, fmt.Errorf("amount %q out of range", s)
	}
	milliunits *= 1000

	frac := int64(0)
	for _, c := range fracPart {
		if c < '0' || c > '9' {
			return Money{}, fmt.Errorf("malformed amount %q", s)
		}
		frac = frac*10 + int64(c-'0')
	}
	for i := len(fracPart); i < 3; i++ {
		frac *= 10
	}
	if milliunits > math.MaxInt64-frac {
		return Money{}, fmt.Errorf("amount %q out of range", s)
	}
	milliunits += frac

	if neg {
		milliunits = -milliunits
	}
	return Money{milliunits: milliunits}, nil
}
