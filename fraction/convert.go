package fraction

import (
	"fmt"
	"math"
	"strings"
)

// fitsFloatDenominator bounds the round-trip approximation used by
// FitsFloat64.
const fitsFloatDenominator = 1000000

// Float64 converts f to the nearest float64. Very large operands are
// subject to double rounding and overflow; the result is not
// guaranteed exact.
func (f *Frac) Float64() float64 {
	if f == nil {
		panic("fraction: nil operand")
	}
	return f.num.Float64() / f.den.Float64()
}

// Int64 returns the value as an int64 when f is an integer that fits
// the signed 64 bit range.
func (f *Frac) Int64() (int64, bool) {
	if f == nil {
		panic("fraction: nil operand")
	}
	if !f.IsInt() {
		return 0, false
	}
	return f.num.Int64()
}

// String renders the canonical text form: "num" for integers,
// "num/den" otherwise, both in base 10.
func (f *Frac) String() string {
	if f == nil {
		panic("fraction: nil operand")
	}
	if f.IsInt() {
		return f.num.Text(10)
	}
	return f.num.Text(10) + "/" + f.den.Text(10)
}

// Parse reads the canonical text form back: an optional sign, digits,
// and an optional "/digits" suffix. Malformed halves and a zero
// denominator yield an error, never a panic, since the text is
// uncontrolled input.
func Parse(s string) (*Frac, error) {
	slash := strings.IndexByte(s, '/')
	if slash < 0 {
		num, ok := eng.Parse(s, 10)
		if !ok {
			return nil, fmt.Errorf("fraction: invalid integer %q", s)
		}
		f := intFrac(num)
		num.Release()
		return f, nil
	}

	num, ok := eng.Parse(s[:slash], 10)
	if !ok {
		return nil, fmt.Errorf("fraction: invalid numerator %q", s)
	}
	den, ok := eng.Parse(s[slash+1:], 10)
	if !ok {
		num.Release()
		return nil, fmt.Errorf("fraction: invalid denominator %q", s)
	}
	if den.IsZero() {
		num.Release()
		den.Release()
		return nil, fmt.Errorf("fraction: zero denominator %q", s)
	}
	f := FromInts(num, den)
	num.Release()
	den.Release()
	return f, nil
}

// Hash combines base 33 polynomial hashes of the decimal text of the
// numerator and the denominator. Equal fractions hash equally because
// hashing always sees the reduced canonical form.
func (f *Frac) Hash() uint64 {
	if f == nil {
		panic("fraction: nil operand")
	}
	h1 := hashText(f.num.Text(10))
	h2 := hashText(f.den.Text(10))
	return h1 ^ (h2 << 1)
}

func hashText(s string) uint64 {
	var h uint64
	for i := 0; i < len(s); i++ {
		h = h*33 + uint64(s[i])
	}
	return h
}

// FitsInt32 reports whether f is an integer representable as int32.
func (f *Frac) FitsInt32() bool {
	if f == nil {
		panic("fraction: nil operand")
	}
	if !f.IsInt() {
		return false
	}
	_, ok := f.num.Int32()
	return ok
}

// FitsInt64 reports whether f is an integer representable as int64.
func (f *Frac) FitsInt64() bool {
	if f == nil {
		panic("fraction: nil operand")
	}
	if !f.IsInt() {
		return false
	}
	_, ok := f.num.Int64()
	return ok
}

// FitsFloat64 reports whether f survives a round trip through float64
// and a bounded continued fraction approximation. The test is
// operational, not a mantissa analysis, so some exactly representable
// large fractions report false.
func (f *Frac) FitsFloat64() bool {
	if f == nil {
		panic("fraction: nil operand")
	}
	d := f.Float64()
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return false
	}
	conv, err := FromFloat64(d, fitsFloatDenominator)
	if err != nil {
		return false
	}
	fits := f.Equal(conv)
	Release(&conv)
	return fits
}
