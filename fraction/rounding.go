package fraction

import "github.com/exactnum/fraction/integer"

// Floor returns the largest integer not greater than f.
func (f *Frac) Floor() *Frac {
	if f == nil {
		panic("fraction: nil operand")
	}
	if f.IsInt() {
		return f.Copy()
	}
	q := eng.Div(f.num, f.den)
	r := intFrac(q)
	q.Release()
	return r
}

// Ceil returns the smallest integer not less than f. For a non
// integer that is always floor + 1.
func (f *Frac) Ceil() *Frac {
	if f == nil {
		panic("fraction: nil operand")
	}
	if f.IsInt() {
		return f.Copy()
	}
	q := eng.Div(f.num, f.den)
	one := eng.One()
	up := eng.Add(q, one)
	r := intFrac(up)
	q.Release()
	one.Release()
	up.Release()
	return r
}

// WholePart returns a caller owned handle to f truncated toward zero.
// Floor division rounds toward negative infinity, so a negative, non
// exact quotient is corrected by one.
func (f *Frac) WholePart() integer.Int {
	if f == nil {
		panic("fraction: nil operand")
	}
	q := eng.Div(f.num, f.den)
	if f.IsNegative() && !f.IsInt() {
		one := eng.One()
		adj := eng.Add(q, one)
		q.Release()
		one.Release()
		return adj
	}
	return q
}

// Trunc returns f truncated toward zero as a fraction.
func (f *Frac) Trunc() *Frac {
	if f == nil {
		panic("fraction: nil operand")
	}
	if f.IsInt() {
		return f.Copy()
	}
	w := f.WholePart()
	r := intFrac(w)
	w.Release()
	return r
}

// FracPart returns f - trunc(f). The result keeps the sign of f:
// -7/3 yields -1/3, not 2/3. Integers yield zero.
func (f *Frac) FracPart() *Frac {
	if f == nil {
		panic("fraction: nil operand")
	}
	if f.IsInt() {
		return Zero()
	}
	w := f.WholePart()
	whole := intFrac(w)
	w.Release()
	r := f.Sub(whole)
	Release(&whole)
	return r
}

// Round returns f rounded to the nearest integer with ties to even.
// The tie test compares the absolute fractional part against exactly
// 1/2, no tolerance involved.
func (f *Frac) Round() *Frac {
	if f == nil {
		panic("fraction: nil operand")
	}
	if f.IsInt() {
		return f.Copy()
	}

	half := New(1, 2)
	fp := f.FracPart()
	afp := fp.Abs()
	Release(&fp)
	tie := afp.Equal(half)
	Release(&afp)

	if !tie {
		signed := half.Copy()
		if f.IsNegative() {
			Release(&signed)
			signed = half.Neg()
		}
		adjusted := f.Add(signed)
		r := adjusted.Trunc()
		Release(&half)
		Release(&signed)
		Release(&adjusted)
		return r
	}
	Release(&half)

	w := f.WholePart()
	if intIsEven(w) {
		r := intFrac(w)
		w.Release()
		return r
	}
	// Odd whole part: step away from zero to the even neighbor.
	one := eng.One()
	var adj integer.Int
	if f.IsNegative() {
		adj = eng.Sub(w, one)
	} else {
		adj = eng.Add(w, one)
	}
	r := intFrac(adj)
	w.Release()
	one.Release()
	adj.Release()
	return r
}

// intIsEven tests parity using only engine operations. Floor division
// by two followed by doubling restores an even value exactly, for
// either sign.
func intIsEven(n integer.Int) bool {
	two := eng.FromInt64(2)
	q := eng.Div(n, two)
	back := eng.Mul(q, two)
	even := eng.Cmp(back, n) == 0
	two.Release()
	q.Release()
	back.Release()
	return even
}
