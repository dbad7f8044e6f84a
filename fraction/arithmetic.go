package fraction

// Every operation rebuilds its result through FromInts, which
// re-normalizes the sign and reduces again, so products of reduced
// inputs never leak an unreduced fraction.

// Add returns f + b: (ad + bc) / bd.
func (f *Frac) Add(b *Frac) *Frac {
	if f == nil || b == nil {
		panic("fraction: nil operand")
	}
	ad := eng.Mul(f.num, b.den)
	bc := eng.Mul(b.num, f.den)
	num := eng.Add(ad, bc)
	den := eng.Mul(f.den, b.den)
	r := FromInts(num, den)
	ad.Release()
	bc.Release()
	num.Release()
	den.Release()
	return r
}

// Sub returns f - b: (ad - bc) / bd.
func (f *Frac) Sub(b *Frac) *Frac {
	if f == nil || b == nil {
		panic("fraction: nil operand")
	}
	ad := eng.Mul(f.num, b.den)
	bc := eng.Mul(b.num, f.den)
	num := eng.Sub(ad, bc)
	den := eng.Mul(f.den, b.den)
	r := FromInts(num, den)
	ad.Release()
	bc.Release()
	num.Release()
	den.Release()
	return r
}

// Mul returns f * b: ac / bd.
func (f *Frac) Mul(b *Frac) *Frac {
	if f == nil || b == nil {
		panic("fraction: nil operand")
	}
	num := eng.Mul(f.num, b.num)
	den := eng.Mul(f.den, b.den)
	r := FromInts(num, den)
	num.Release()
	den.Release()
	return r
}

// Div returns f / b. It panics when b is zero.
func (f *Frac) Div(b *Frac) *Frac {
	if f == nil || b == nil {
		panic("fraction: nil operand")
	}
	if b.IsZero() {
		panic("fraction: division by zero")
	}
	num := eng.Mul(f.num, b.den)
	den := eng.Mul(f.den, b.num)
	r := FromInts(num, den)
	num.Release()
	den.Release()
	return r
}

// Neg returns -f.
func (f *Frac) Neg() *Frac {
	if f == nil {
		panic("fraction: nil operand")
	}
	num := eng.Neg(f.num)
	r := FromInts(num, f.den)
	num.Release()
	return r
}

// Abs returns |f|.
func (f *Frac) Abs() *Frac {
	if f == nil {
		panic("fraction: nil operand")
	}
	num := eng.Abs(f.num)
	r := FromInts(num, f.den)
	num.Release()
	return r
}

// Reciprocal returns 1/f. It panics when f is zero.
func (f *Frac) Reciprocal() *Frac {
	if f == nil {
		panic("fraction: nil operand")
	}
	if f.IsZero() {
		panic("fraction: reciprocal of zero")
	}
	return FromInts(f.den, f.num)
}

// Pow raises f to an integer power by squaring. A negative exponent
// inverts the base first; exp == 0 yields one for any base, including
// zero. Zero to a negative power panics.
func (f *Frac) Pow(exp int64) *Frac {
	if f == nil {
		panic("fraction: nil operand")
	}
	switch exp {
	case 0:
		return One()
	case 1:
		return f.Copy()
	}
	if f.IsZero() {
		if exp < 0 {
			panic("fraction: zero to negative power")
		}
		return Zero()
	}
	if exp < 0 {
		inv := f.Reciprocal()
		r := inv.Pow(-exp)
		Release(&inv)
		return r
	}

	result := One()
	base := f.Copy()
	for exp > 0 {
		if exp&1 == 1 {
			next := result.Mul(base)
			Release(&result)
			result = next
		}
		exp >>= 1
		if exp > 0 {
			next := base.Mul(base)
			Release(&base)
			base = next
		}
	}
	Release(&base)
	return result
}
