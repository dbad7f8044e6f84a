package logger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	assert := assert.New(t)

	out := filterOutput("reduced fraction %d", time.Now().UnixNano())
	assert.Contains(out, "fraction")

	err := SetFilter("approx")
	assert.Nil(err)
	out = filterOutput("reduced fraction %d", time.Now().UnixNano())
	assert.NotContains(out, "fraction")
	out = filterOutput("Approx fraction %d", time.Now().UnixNano())
	assert.NotContains(out, "fraction")
	out = filterOutput("approx fraction %d", time.Now().UnixNano())
	assert.Contains(out, "fraction")

	err = SetFilter("(?i)approx")
	assert.Nil(err)
	out = filterOutput("reduced fraction %d", time.Now().UnixNano())
	assert.NotContains(out, "fraction")
	out = filterOutput("Approx fraction %d", time.Now().UnixNano())
	assert.Contains(out, "fraction")

	err = SetFilter("(?i)approx|reduced")
	assert.Nil(err)
	out = filterOutput("reduced fraction %d", time.Now().UnixNano())
	assert.Contains(out, "fraction")
	out = filterOutput("Approx fraction %d", time.Now().UnixNano())
	assert.Contains(out, "fraction")
	out = filterOutput("rounded ratio %d", time.Now().UnixNano())
	assert.NotContains(out, "ratio")

	err = SetFilter("(")
	assert.NotNil(err)
	err = SetFilter("")
	assert.Nil(err)
	out = filterOutput("anything %d", time.Now().UnixNano())
	assert.Contains(out, "anything")

	la := limiterAvailable("rpc evaluate")
	assert.True(la)
	SetLimiter(10)
	for i := 0; i < 10; i++ {
		la := limiterAvailable("rpc evaluate")
		assert.True(la)
	}
	la = limiterAvailable("rpc evaluate")
	assert.False(la)
	la = limiterAvailable("rpc approximate")
	assert.True(la)
	SetLimiter(0)
}
