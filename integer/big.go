package integer

import (
	"fmt"
	"math"
	"math/big"
	"sync"
	"sync/atomic"
)

var bigOne = big.NewInt(1)

// Big is the default Engine, backed by math/big. Released values hand
// their storage back to a shared pool, so "last release destroys"
// becomes "last release recycles".
type Big struct {
	pool sync.Pool
}

func NewBig() *Big {
	e := &Big{}
	e.pool.New = func() interface{} {
		return new(big.Int)
	}
	return e
}

type bigValue struct {
	eng  *Big
	n    *big.Int
	refs int64
}

func (e *Big) alloc() *bigValue {
	return &bigValue{eng: e, n: e.pool.Get().(*big.Int), refs: 1}
}

// raw unwraps a handle for use as a math/big operand. It rejects
// handles from another engine and handles that were already released.
func (e *Big) raw(x Int) *big.Int {
	v, ok := x.(*bigValue)
	if !ok || v.eng != e {
		panic(fmt.Sprintf("integer: foreign handle %T", x))
	}
	if atomic.LoadInt64(&v.refs) <= 0 {
		panic("integer: use after release")
	}
	return v.n
}

func (e *Big) FromInt64(v int64) Int {
	x := e.alloc()
	x.n.SetInt64(v)
	return x
}

func (e *Big) Parse(s string, base int) (Int, bool) {
	x := e.alloc()
	if _, ok := x.n.SetString(s, base); !ok {
		x.Release()
		return nil, false
	}
	return x, true
}

func (e *Big) Zero() Int {
	return e.FromInt64(0)
}

func (e *Big) One() Int {
	return e.FromInt64(1)
}

func (e *Big) Add(x, y Int) Int {
	v := e.alloc()
	v.n.Add(e.raw(x), e.raw(y))
	return v
}

func (e *Big) Sub(x, y Int) Int {
	v := e.alloc()
	v.n.Sub(e.raw(x), e.raw(y))
	return v
}

func (e *Big) Mul(x, y Int) Int {
	v := e.alloc()
	v.n.Mul(e.raw(x), e.raw(y))
	return v
}

func (e *Big) Div(x, y Int) Int {
	a, b := e.raw(x), e.raw(y)
	if b.Sign() == 0 {
		panic("integer: division by zero")
	}
	v := e.alloc()
	var r big.Int
	v.n.QuoRem(a, b, &r)
	// Quo truncates toward zero. When the remainder and the divisor
	// disagree in sign the exact quotient is negative, so floor is one
	// below the truncated quotient.
	if r.Sign() != 0 && (r.Sign() < 0) != (b.Sign() < 0) {
		v.n.Sub(v.n, bigOne)
	}
	return v
}

func (e *Big) GCD(x, y Int) Int {
	a, b := e.raw(x), e.raw(y)
	if a.Sign() == 0 && b.Sign() == 0 {
		return nil
	}
	var ta, tb big.Int
	v := e.alloc()
	v.n.GCD(nil, nil, ta.Abs(a), tb.Abs(b))
	return v
}

func (e *Big) Neg(x Int) Int {
	v := e.alloc()
	v.n.Neg(e.raw(x))
	return v
}

func (e *Big) Abs(x Int) Int {
	v := e.alloc()
	v.n.Abs(e.raw(x))
	return v
}

func (e *Big) Cmp(x, y Int) int {
	return e.raw(x).Cmp(e.raw(y))
}

func (x *bigValue) Sign() int {
	return x.n.Sign()
}

func (x *bigValue) IsZero() bool {
	return x.n.Sign() == 0
}

func (x *bigValue) IsOne() bool {
	return x.n.Cmp(bigOne) == 0
}

func (x *bigValue) IsNegative() bool {
	return x.n.Sign() < 0
}

func (x *bigValue) Int64() (int64, bool) {
	if !x.n.IsInt64() {
		return 0, false
	}
	return x.n.Int64(), true
}

func (x *bigValue) Int32() (int32, bool) {
	if !x.n.IsInt64() {
		return 0, false
	}
	v := x.n.Int64()
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}
	return int32(v), true
}

func (x *bigValue) Float64() float64 {
	f, _ := new(big.Float).SetInt(x.n).Float64()
	return f
}

func (x *bigValue) Text(base int) string {
	return x.n.Text(base)
}

func (x *bigValue) Retain() Int {
	if atomic.AddInt64(&x.refs, 1) <= 1 {
		panic("integer: retain after release")
	}
	return x
}

func (x *bigValue) Release() {
	refs := atomic.AddInt64(&x.refs, -1)
	if refs < 0 {
		panic("integer: release after release")
	}
	if refs == 0 {
		n := x.n
		x.n = nil
		x.eng.pool.Put(n)
	}
}
