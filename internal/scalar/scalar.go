// Package scalar implements the Scalar numeric back-end the calculator core
// treats as opaque (spec §3): a value that is either exactly rational
// (backed by math/big.Rat, wrapped the way robpike-ivy/value/bigrat.go
// wraps it) or floating (backed by shopspring/decimal.Decimal, the way
// other_examples' gval.go wires a decimal arithmetic language). Rational
// mode is preserved across +, -, *, /, unary -, and comparisons; anything
// that needs a transcendental or an irrational power promotes to float.
package scalar

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// Scalar is the numeric value type threaded through Quantity arithmetic.
// Every method is total: implementations never panic on ordinary operands,
// returning a NaN-flagged value instead (see IsNaN), except where the
// caller has violated a documented precondition (division by a zero
// Scalar, which the caller must check first via IsZero).
type Scalar interface {
	IsRational() bool

	Add(Scalar) Scalar
	Sub(Scalar) Scalar
	Mul(Scalar) Scalar
	Div(Scalar) Scalar // caller must check !other.IsZero() first
	Mod(Scalar) Scalar
	Neg() Scalar
	Pow(Scalar) Scalar

	Sin() Scalar
	Cos() Scalar
	Tan() Scalar
	Asin() Scalar
	Acos() Scalar
	Atan() Scalar
	Sinh() Scalar
	Cosh() Scalar
	Tanh() Scalar
	Asinh() Scalar
	Acosh() Scalar
	Atanh() Scalar
	Exp() Scalar
	Ln() Scalar
	Log10() Scalar
	Log2() Scalar
	LogBase(Scalar) Scalar

	Fract() Scalar
	Floor() Scalar
	Ceil() Scalar
	Round() Scalar
	Abs() Scalar

	IsZero() bool
	IsOne() bool
	IsNaN() bool
	IsNegative() bool
	IsPositive() bool

	Cmp(Scalar) int // -1, 0, 1; undefined (0) if either side IsNaN

	String() string
	Float() float64
}

// NewRationalFromFloat builds an exact rational Scalar from a float64,
// returning ok=false if the float is not finite.
func NewRationalFromFloat(f float64) (Scalar, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		return nil, false
	}
	return Rational{r}, true
}

// NewRationalFromString parses a decimal literal exactly, as a rational.
func NewRationalFromString(s string) (Scalar, bool) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, false
	}
	return Rational{r}, true
}

// NewFloatFromFloat builds a float-mode Scalar from a float64.
func NewFloatFromFloat(f float64) (Scalar, bool) {
	if math.IsNaN(f) {
		return Float{decimal.Decimal{}, true}, true
	}
	if math.IsInf(f, 0) {
		return nil, false
	}
	return Float{decimal.NewFromFloat(f), false}, true
}

// NewFloatFromString parses a decimal literal as a float-mode Scalar.
func NewFloatFromString(s string) (Scalar, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, false
	}
	return Float{d, false}, true
}

// nan is a convenience float-mode NaN Scalar.
func nan() Scalar { return Float{decimal.Decimal{}, true} }

// promote coerces two Scalars to a common representation: rational if both
// are rational, float otherwise.
func promote(a, b Scalar) (Scalar, Scalar) {
	ar, aok := a.(Rational)
	br, bok := b.(Rational)
	if aok && bok {
		return ar, br
	}
	return toFloat(a), toFloat(b)
}

// ToRat extracts an exact or best-effort big.Rat view of s, for callers
// (the unit algebra) that need a rational exponent even when the Scalar
// itself is float-backed.
func ToRat(s Scalar) *big.Rat {
	if r, ok := s.(Rational); ok {
		return r.Rat
	}
	f := s.(Float)
	fv, _ := f.Decimal.Float64()
	r := new(big.Rat).SetFloat64(fv)
	if r == nil {
		return new(big.Rat)
	}
	return r
}

func toFloat(s Scalar) Scalar {
	if f, ok := s.(Float); ok {
		return f
	}
	r := s.(Rational)
	f, _ := new(big.Float).SetRat(r.Rat).Float64()
	v, ok := NewFloatFromFloat(f)
	if !ok {
		return nan()
	}
	return v
}
