package fraction

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FromDecimal parses decimal text such as "3.25" into the exact
// fraction it denotes, 13/4. The sign convention and reduction are the
// same as for any other constructor.
func FromDecimal(s string) (*Frac, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("fraction: %s", err)
	}

	num, ok := eng.Parse(d.Coefficient().String(), 10)
	if !ok {
		return nil, fmt.Errorf("fraction: invalid decimal %q", s)
	}
	den := eng.One()
	if exp := int(d.Exponent()); exp > 0 {
		scale, _ := eng.Parse("1"+strings.Repeat("0", exp), 10)
		scaled := eng.Mul(num, scale)
		num.Release()
		scale.Release()
		num = scaled
	} else if exp < 0 {
		den.Release()
		den, _ = eng.Parse("1"+strings.Repeat("0", -exp), 10)
	}

	f := FromInts(num, den)
	num.Release()
	den.Release()
	return f, nil
}

// Decimal renders f as a decimal rounded to the given number of
// places, for display in money-style contexts. The result is inexact
// whenever the reduced denominator has a prime factor other than 2
// or 5.
func (f *Frac) Decimal(places int32) decimal.Decimal {
	if f == nil {
		panic("fraction: nil operand")
	}
	num := decimal.RequireFromString(f.num.Text(10))
	den := decimal.RequireFromString(f.den.Text(10))
	return num.DivRound(den, places)
}
