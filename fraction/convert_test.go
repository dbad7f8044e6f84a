package fraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat64(t *testing.T) {
	assert := assert.New(t)

	f := New(3, 4)
	assert.InDelta(0.75, f.Float64(), 1e-12)
	Release(&f)

	f = New(-7, 3)
	assert.InDelta(-7.0/3.0, f.Float64(), 1e-12)
	Release(&f)
}

func TestInt64(t *testing.T) {
	assert := assert.New(t)

	f := New(10, 2)
	v, ok := f.Int64()
	assert.True(ok)
	assert.Equal(int64(5), v)
	Release(&f)

	f = New(1, 3)
	_, ok = f.Int64()
	assert.False(ok)
	Release(&f)

	big, err := Parse("123456789012345678901234567890")
	assert.Nil(err)
	_, ok = big.Int64()
	assert.False(ok)
	Release(&big)
}

func TestString(t *testing.T) {
	assert := assert.New(t)

	f := New(3, 4)
	assert.Equal("3/4", f.String())
	Release(&f)

	f = New(-6, 8)
	assert.Equal("-3/4", f.String())
	Release(&f)

	f = New(8, 4)
	assert.Equal("2", f.String())
	Release(&f)

	f = New(0, 7)
	assert.Equal("0", f.String())
	Release(&f)
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	f, err := Parse("3/4")
	assert.Nil(err)
	assert.Equal("3/4", f.String())
	Release(&f)

	f, err = Parse("-6/8")
	assert.Nil(err)
	assert.Equal("-3/4", f.String())
	Release(&f)

	f, err = Parse("42")
	assert.Nil(err)
	assert.True(f.IsInt())
	assert.Equal("42", f.String())
	Release(&f)

	// A negative denominator in the text still normalizes.
	f, err = Parse("3/-4")
	assert.Nil(err)
	assert.Equal("-3/4", f.String())
	Release(&f)

	for _, s := range []string{"", "abc", "1/", "/2", "1/2/3", "1.5", "3/0"} {
		_, err = Parse(s)
		assert.NotNil(err, "Parse(%q)", s)
	}
}

func TestStringRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for _, f := range []*Frac{
		New(3, 4), New(-7, 3), Zero(), One(), NegOne(),
		New(123456789, 987654321), New(-1, 1000000),
	} {
		back, err := Parse(f.String())
		assert.Nil(err)
		assert.True(back.Equal(f))
		bn, bd := parts(t, back)
		fn, fd := parts(t, f)
		assert.Equal(fn, bn)
		assert.Equal(fd, bd)
		Release(&back)
		v := f
		Release(&v)
	}
}

func TestHash(t *testing.T) {
	assert := assert.New(t)

	a := New(3, 4)
	b := New(6, 8)
	c := New(4, 3)

	assert.Equal(a.Hash(), b.Hash())
	assert.NotEqual(a.Hash(), c.Hash())

	Release(&a)
	Release(&b)
	Release(&c)
}

func TestFits(t *testing.T) {
	assert := assert.New(t)

	f := New(7, 1)
	assert.True(f.FitsInt32())
	assert.True(f.FitsInt64())
	Release(&f)

	f = New(1, 2)
	assert.False(f.FitsInt32())
	assert.False(f.FitsInt64())
	Release(&f)

	f = FromInt(1 << 40)
	assert.False(f.FitsInt32())
	assert.True(f.FitsInt64())
	Release(&f)

	big, err := Parse("1" + strings.Repeat("0", 30))
	assert.Nil(err)
	assert.False(big.FitsInt32())
	assert.False(big.FitsInt64())
	Release(&big)
}

func TestFitsFloat64(t *testing.T) {
	assert := assert.New(t)

	f := New(1, 3)
	assert.True(f.FitsFloat64())
	Release(&f)

	f = New(3, 4)
	assert.True(f.FitsFloat64())
	Release(&f)

	// A denominator beyond the round-trip bound does not fit.
	f = New(1, 10000019)
	assert.False(f.FitsFloat64())
	Release(&f)

	// Overflowing the float range never fits.
	huge, err := Parse("1" + strings.Repeat("0", 400))
	assert.Nil(err)
	assert.False(huge.FitsFloat64())
	Release(&huge)
}
