package fraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromDecimal(t *testing.T) {
	assert := assert.New(t)

	f, err := FromDecimal("3.25")
	assert.Nil(err)
	n, d := parts(t, f)
	assert.Equal(int64(13), n)
	assert.Equal(int64(4), d)
	Release(&f)

	f, err = FromDecimal("-0.5")
	assert.Nil(err)
	n, d = parts(t, f)
	assert.Equal(int64(-1), n)
	assert.Equal(int64(2), d)
	Release(&f)

	f, err = FromDecimal("42")
	assert.Nil(err)
	assert.Equal("42", f.String())
	Release(&f)

	f, err = FromDecimal("1.2e3")
	assert.Nil(err)
	assert.Equal("1200", f.String())
	Release(&f)

	f, err = FromDecimal("0.1")
	assert.Nil(err)
	n, d = parts(t, f)
	assert.Equal(int64(1), n)
	assert.Equal(int64(10), d)
	Release(&f)

	_, err = FromDecimal("not a number")
	assert.NotNil(err)
	_, err = FromDecimal("")
	assert.NotNil(err)
}

func TestDecimalRendering(t *testing.T) {
	assert := assert.New(t)

	f := New(13, 4)
	assert.Equal("3.25", f.Decimal(2).String())
	Release(&f)

	f = New(1, 3)
	assert.Equal("0.3333", f.Decimal(4).String())
	Release(&f)

	f = New(-7, 3)
	assert.Equal("-2.33", f.Decimal(2).String())
	Release(&f)

	f = New(5, 1)
	assert.Equal("5", f.Decimal(2).String())
	Release(&f)
}
