package integer

// Int is a handle to a reference counted, arbitrary precision signed
// integer owned by an Engine. The value behind a handle never changes;
// Retain and Release only manage its lifetime. A handle must not be
// used after its last Release.
type Int interface {
	Sign() int
	IsZero() bool
	IsOne() bool
	IsNegative() bool
	// Int64 narrows the value to a signed 64 bit integer, reporting
	// whether it fits.
	Int64() (int64, bool)
	// Int32 narrows the value to a signed 32 bit integer, reporting
	// whether it fits.
	Int32() (int32, bool)
	// Float64 converts the value to the nearest float64, which may be
	// an infinity for very large magnitudes.
	Float64() float64
	// Text returns the textual representation in the given base.
	Text(base int) string
	Retain() Int
	Release()
}

// Engine constructs and combines Int values. Every returned handle is
// owned by the caller and must be balanced with a Release.
type Engine interface {
	FromInt64(v int64) Int
	// Parse reads a signed integer in the given base, reporting
	// whether the text was well formed.
	Parse(s string, base int) (Int, bool)
	Zero() Int
	One() Int
	Add(x, y Int) Int
	Sub(x, y Int) Int
	Mul(x, y Int) Int
	// Div is floor division, rounding toward negative infinity for
	// any sign combination. The divisor must not be zero.
	Div(x, y Int) Int
	// GCD returns the greatest common divisor of the magnitudes of x
	// and y, always strictly positive, or nil when it is undefined
	// because both operands are zero.
	GCD(x, y Int) Int
	Neg(x Int) Int
	Abs(x Int) Int
	// Cmp returns -1, 0 or 1 ordering x against y.
	Cmp(x, y Int) int
}
