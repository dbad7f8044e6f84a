package fraction

// Cmp orders f against b by comparing a.num*b.den with b.num*a.den.
// Both denominators are positive, so cross multiplication preserves
// order without requiring reduced inputs.
func (f *Frac) Cmp(b *Frac) int {
	if f == nil || b == nil {
		panic("fraction: nil operand")
	}
	ad := eng.Mul(f.num, b.den)
	bc := eng.Mul(b.num, f.den)
	c := eng.Cmp(ad, bc)
	ad.Release()
	bc.Release()
	return c
}

func (f *Frac) Equal(b *Frac) bool {
	return f.Cmp(b) == 0
}

func (f *Frac) NotEqual(b *Frac) bool {
	return f.Cmp(b) != 0
}

func (f *Frac) Less(b *Frac) bool {
	return f.Cmp(b) < 0
}

func (f *Frac) LessEqual(b *Frac) bool {
	return f.Cmp(b) <= 0
}

func (f *Frac) Greater(b *Frac) bool {
	return f.Cmp(b) > 0
}

func (f *Frac) GreaterEqual(b *Frac) bool {
	return f.Cmp(b) >= 0
}

func (f *Frac) IsZero() bool {
	return f.num.IsZero()
}

func (f *Frac) IsOne() bool {
	return f.num.IsOne() && f.den.IsOne()
}

func (f *Frac) IsNegative() bool {
	return f.num.IsNegative()
}

func (f *Frac) IsPositive() bool {
	return f.num.Sign() > 0
}

// IsInt reports whether f is an integer, which in reduced form means
// the denominator is one.
func (f *Frac) IsInt() bool {
	return f.den.IsOne()
}

// Sign returns -1, 0 or 1.
func (f *Frac) Sign() int {
	return f.num.Sign()
}

// Min returns a copy of the lesser operand. Equal operands are
// interchangeable.
func (f *Frac) Min(b *Frac) *Frac {
	if f.Less(b) {
		return f.Copy()
	}
	return b.Copy()
}

// Max returns a copy of the greater operand.
func (f *Frac) Max(b *Frac) *Frac {
	if f.Greater(b) {
		return f.Copy()
	}
	return b.Copy()
}
