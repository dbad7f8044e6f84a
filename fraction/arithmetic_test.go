package fraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	assert := assert.New(t)

	a := New(1, 2)
	b := New(1, 3)
	sum := a.Add(b)
	n, d := parts(t, sum)
	assert.Equal(int64(5), n)
	assert.Equal(int64(6), d)
	Release(&sum)

	// Results come back reduced even when the raw products share a
	// factor.
	c := New(1, 6)
	sum = a.Add(c)
	n, d = parts(t, sum)
	assert.Equal(int64(2), n)
	assert.Equal(int64(3), d)
	Release(&sum)
	Release(&c)

	neg := a.Neg()
	zero := a.Add(neg)
	assert.True(zero.IsZero())
	Release(&zero)
	Release(&neg)

	Release(&a)
	Release(&b)
}

func TestSub(t *testing.T) {
	assert := assert.New(t)

	a := New(3, 4)
	b := New(1, 2)
	diff := a.Sub(b)
	n, d := parts(t, diff)
	assert.Equal(int64(1), n)
	assert.Equal(int64(4), d)
	Release(&diff)

	diff = b.Sub(a)
	n, d = parts(t, diff)
	assert.Equal(int64(-1), n)
	assert.Equal(int64(4), d)
	Release(&diff)

	Release(&a)
	Release(&b)
}

func TestMul(t *testing.T) {
	assert := assert.New(t)

	a := New(2, 3)
	b := New(3, 5)
	prod := a.Mul(b)
	n, d := parts(t, prod)
	assert.Equal(int64(2), n)
	assert.Equal(int64(5), d)
	Release(&prod)

	inv := a.Reciprocal()
	one := a.Mul(inv)
	assert.True(one.IsOne())
	Release(&one)
	Release(&inv)

	Release(&a)
	Release(&b)
}

func TestDiv(t *testing.T) {
	assert := assert.New(t)

	a := New(2, 3)
	b := New(4, 5)
	quot := a.Div(b)
	n, d := parts(t, quot)
	assert.Equal(int64(5), n)
	assert.Equal(int64(6), d)

	// div(mul(a,b), b) == a
	prod := a.Mul(b)
	back := prod.Div(b)
	assert.True(back.Equal(a))
	Release(&prod)
	Release(&back)
	Release(&quot)

	zero := Zero()
	assert.Panics(func() { a.Div(zero) })
	assert.Panics(func() { zero.Reciprocal() })
	Release(&zero)

	Release(&a)
	Release(&b)
}

func TestNegAbs(t *testing.T) {
	assert := assert.New(t)

	a := New(-7, 3)
	neg := a.Neg()
	assert.Equal("7/3", neg.String())
	abs := a.Abs()
	assert.Equal("7/3", abs.String())
	back := neg.Neg()
	assert.True(back.Equal(a))

	Release(&a)
	Release(&neg)
	Release(&abs)
	Release(&back)
}

func TestPow(t *testing.T) {
	assert := assert.New(t)

	base := New(2, 3)

	p := base.Pow(0)
	assert.True(p.IsOne())
	Release(&p)

	p = base.Pow(1)
	assert.True(p.Equal(base))
	Release(&p)

	p = base.Pow(3)
	n, d := parts(t, p)
	assert.Equal(int64(8), n)
	assert.Equal(int64(27), d)
	Release(&p)

	p = base.Pow(-1)
	n, d = parts(t, p)
	assert.Equal(int64(3), n)
	assert.Equal(int64(2), d)
	Release(&p)

	p = base.Pow(-2)
	n, d = parts(t, p)
	assert.Equal(int64(9), n)
	assert.Equal(int64(4), d)
	Release(&p)

	zero := Zero()
	p = zero.Pow(0)
	assert.True(p.IsOne())
	Release(&p)
	p = zero.Pow(5)
	assert.True(p.IsZero())
	Release(&p)
	assert.Panics(func() { zero.Pow(-1) })
	Release(&zero)

	neg := New(-1, 2)
	p = neg.Pow(2)
	n, d = parts(t, p)
	assert.Equal(int64(1), n)
	assert.Equal(int64(4), d)
	Release(&p)
	p = neg.Pow(3)
	n, d = parts(t, p)
	assert.Equal(int64(-1), n)
	assert.Equal(int64(8), d)
	Release(&p)
	Release(&neg)

	Release(&base)

	assert.Panics(func() { (*Frac)(nil).Add(nil) })
}
