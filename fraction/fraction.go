// Package fraction implements exact rational arithmetic over an
// arbitrary precision integer engine.
package fraction

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/exactnum/fraction/integer"
)

// eng backs all new fractions. Handles from different engines must
// never be mixed, so swap it only before any fraction is constructed.
var eng integer.Engine = integer.NewBig()

// SetEngine replaces the integer engine and returns the previous one.
// Intended for tests running the core against an alternate engine.
func SetEngine(e integer.Engine) integer.Engine {
	prev := eng
	eng = e
	return prev
}

// Frac is an exact rational number: a reference counted pair of
// arbitrary precision integers kept in lowest terms with a strictly
// positive denominator. A Frac is immutable once returned from a
// constructor; Retain and Release only manage its lifetime.
type Frac struct {
	num  integer.Int
	den  integer.Int
	refs int64
}

// newFrac builds a fraction over retained handles to num and den, then
// moves any sign to the numerator and reduces to lowest terms. Callers
// guarantee den is not zero.
func newFrac(num, den integer.Int) *Frac {
	f := &Frac{num: num.Retain(), den: den.Retain(), refs: 1}
	f.normalizeSign()
	f.reduce()
	return f
}

func (f *Frac) normalizeSign() {
	if !f.den.IsNegative() {
		return
	}
	num, den := eng.Neg(f.num), eng.Neg(f.den)
	f.num.Release()
	f.den.Release()
	f.num, f.den = num, den
}

// reduce divides out the GCD of numerator and denominator. A failed
// GCD leaves the value unreduced rather than corrupting it.
func (f *Frac) reduce() {
	g := eng.GCD(f.num, f.den)
	if g == nil {
		return
	}
	if g.IsOne() {
		g.Release()
		return
	}
	num, den := eng.Div(f.num, g), eng.Div(f.den, g)
	f.num.Release()
	f.den.Release()
	f.num, f.den = num, den
	g.Release()
}

// New returns the fraction num/den. It panics if den is zero.
func New(num, den int64) *Frac {
	if den == 0 {
		panic("fraction: zero denominator")
	}
	n := eng.FromInt64(num)
	d := eng.FromInt64(den)
	f := newFrac(n, d)
	n.Release()
	d.Release()
	return f
}

// FromInt returns the fraction v/1.
func FromInt(v int64) *Frac {
	return New(v, 1)
}

// FromInts builds a fraction from existing integer handles. It retains
// its own references; the caller keeps ownership of num and den. It
// panics if either handle is nil or den is zero.
func FromInts(num, den integer.Int) *Frac {
	if num == nil || den == nil {
		panic("fraction: nil operand")
	}
	if den.IsZero() {
		panic("fraction: zero denominator")
	}
	return newFrac(num, den)
}

// FromFloat64 approximates a finite float as a fraction whose
// denominator does not exceed maxDen (unbounded when maxDen <= 0),
// using continued fraction convergents. Round-tripping an arbitrary
// float is not bit exact, only within the tolerance and the
// denominator bound. NaN and infinities yield an error.
func FromFloat64(v float64, maxDen int64) (*Frac, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("fraction: cannot represent %v", v)
	}
	if maxDen <= 0 {
		maxDen = math.MaxInt64
	}

	neg := v < 0
	if neg {
		v = -v
	}

	// Convergents h/k with h2 = a*h1 + h0, k2 = a*k1 + k0.
	var h0, h1, k0, k1 int64 = 0, 1, 1, 0
	x := v
	for k1 <= maxDen {
		a := int64(math.Floor(x))
		h2 := a*h1 + h0
		k2 := a*k1 + k0
		if k2 > maxDen {
			break
		}
		h0, h1 = h1, h2
		k0, k1 = k1, k2
		if math.Abs(v-float64(h1)/float64(k1)) < 1e-15 {
			break
		}
		x = 1 / (x - float64(a))
		if x > 1e15 {
			break
		}
	}

	if neg {
		h1 = -h1
	}
	return New(h1, k1), nil
}

// Copy returns a new, independently counted fraction with the same
// value.
func (f *Frac) Copy() *Frac {
	if f == nil {
		panic("fraction: nil operand")
	}
	return FromInts(f.num, f.den)
}

// Retain increments the reference count and returns the same handle.
func (f *Frac) Retain() *Frac {
	if f == nil {
		panic("fraction: nil operand")
	}
	if atomic.AddInt64(&f.refs, 1) <= 1 {
		panic("fraction: retain after release")
	}
	return f
}

// Release decrements the reference count, releasing the owned integers
// when it reaches zero, and always clears the caller's handle. A nil
// handle is a no-op.
func Release(f **Frac) {
	if f == nil || *f == nil {
		return
	}
	v := *f
	*f = nil
	refs := atomic.AddInt64(&v.refs, -1)
	if refs < 0 {
		panic("fraction: release after release")
	}
	if refs == 0 {
		v.num.Release()
		v.den.Release()
		v.num, v.den = nil, nil
	}
}

func Zero() *Frac {
	return New(0, 1)
}

func One() *Frac {
	return New(1, 1)
}

func NegOne() *Frac {
	return New(-1, 1)
}

// Num returns an independent, caller owned handle to the numerator.
func (f *Frac) Num() integer.Int {
	return f.num.Retain()
}

// Denom returns an independent, caller owned handle to the
// denominator.
func (f *Frac) Denom() integer.Int {
	return f.den.Retain()
}

// intFrac wraps an integer handle as the fraction n/1.
func intFrac(n integer.Int) *Frac {
	one := eng.One()
	f := FromInts(n, one)
	one.Release()
	return f
}
