package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Price is an exact decimal amount. It exists so purchase prices round-trip
// through JSON without binary float drift: a client that posts 25000.00 gets
// 25000.00 back, not 25000.000000000001.
//
// On the wire a Price is an unquoted JSON number rendered with exactly two
// fractional digits. Quoted numeric strings are accepted on input for
// clients that serialize decimals as strings.
type Price struct {
	dec decimal.Decimal
}

// NewPrice parses a decimal amount such as "25000.00".
func NewPrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, fmt.Errorf("parse price %q: %w", s, err)
	}
	return Price{dec: d}, nil
}

// MustPrice is NewPrice for test fixtures and constants; it panics on
// malformed input.
func MustPrice(s string) Price {
	p, err := NewPrice(s)
	if err != nil {
		panic(err)
	}
	return p
}

// IsPositive reports whether the amount is strictly greater than zero.
func (p Price) IsPositive() bool {
	return p.dec.IsPositive()
}

// IsZero reports whether the amount is exactly zero, including the zero
// value of an unset Price.
func (p Price) IsZero() bool {
	return p.dec.IsZero()
}

// Equal compares amounts numerically, so 25000.0 equals 25000.00.
func (p Price) Equal(other Price) bool {
	return p.dec.Equal(other.dec)
}

// String renders the amount with two fractional digits.
func (p Price) String() string {
	return p.dec.StringFixed(2)
}

// MarshalJSON renders the amount as an unquoted number with two fractional
// digits.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.dec.StringFixed(2)), nil
}

// UnmarshalJSON accepts a JSON number or a quoted numeric string.
func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("parse price %q: %w", s, err)
	}
	p.dec = d
	return nil
}
