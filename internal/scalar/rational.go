package scalar

import "math/big"

// Rational is an exact Scalar backed by math/big.Rat, wrapped the way
// robpike-ivy/value/bigrat.go wraps *big.Rat: a thin struct embedding the
// pointer so arithmetic can delegate straight to the stdlib type.
type Rational struct {
	*big.Rat
}

func (r Rational) IsRational() bool { return true }

func (r Rational) Add(o Scalar) Scalar {
	a, b := promote(r, o)
	if af, ok := a.(Float); ok {
		return af.Add(b)
	}
	return Rational{new(big.Rat).Add(a.(Rational).Rat, b.(Rational).Rat)}
}

func (r Rational) Sub(o Scalar) Scalar {
	a, b := promote(r, o)
	if af, ok := a.(Float); ok {
		return af.Sub(b)
	}
	return Rational{new(big.Rat).Sub(a.(Rational).Rat, b.(Rational).Rat)}
}

func (r Rational) Mul(o Scalar) Scalar {
	a, b := promote(r, o)
	if af, ok := a.(Float); ok {
		return af.Mul(b)
	}
	return Rational{new(big.Rat).Mul(a.(Rational).Rat, b.(Rational).Rat)}
}

func (r Rational) Div(o Scalar) Scalar {
	a, b := promote(r, o)
	if af, ok := a.(Float); ok {
		return af.Div(b)
	}
	return Rational{new(big.Rat).Quo(a.(Rational).Rat, b.(Rational).Rat)}
}

func (r Rational) Mod(o Scalar) Scalar {
	// Modulo is only defined over integers (spec §4.6); reduce through
	// big.Int when both sides are integral, otherwise promote to float.
	ro, ok := o.(Rational)
	if ok && r.IsInt() && ro.IsInt() {
		res := new(big.Int).Mod(r.Num(), ro.Num())
		return Rational{new(big.Rat).SetInt(res)}
	}
	return toFloat(r).Mod(toFloat(o))
}

func (r Rational) Neg() Scalar {
	return Rational{new(big.Rat).Neg(r.Rat)}
}

func (r Rational) Pow(o Scalar) Scalar {
	ro, ok := o.(Rational)
	if !ok || !ro.IsInt() {
		return toFloat(r).Pow(toFloat(o))
	}
	exp := ro.Num()
	if exp.IsInt64() {
		n := exp.Int64()
		if n >= 0 {
			num := new(big.Int).Exp(r.Num(), big.NewInt(n), nil)
			den := new(big.Int).Exp(r.Denom(), big.NewInt(n), nil)
			return Rational{new(big.Rat).SetFrac(num, den)}
		}
		num := new(big.Int).Exp(r.Denom(), big.NewInt(-n), nil)
		den := new(big.Int).Exp(r.Num(), big.NewInt(-n), nil)
		if den.Sign() == 0 {
			return nan()
		}
		return Rational{new(big.Rat).SetFrac(num, den)}
	}
	return toFloat(r).Pow(toFloat(o))
}

func (r Rational) Sin() Scalar   { return toFloat(r).Sin() }
func (r Rational) Cos() Scalar   { return toFloat(r).Cos() }
func (r Rational) Tan() Scalar   { return toFloat(r).Tan() }
func (r Rational) Asin() Scalar  { return toFloat(r).Asin() }
func (r Rational) Acos() Scalar  { return toFloat(r).Acos() }
func (r Rational) Atan() Scalar  { return toFloat(r).Atan() }
func (r Rational) Sinh() Scalar  { return toFloat(r).Sinh() }
func (r Rational) Cosh() Scalar  { return toFloat(r).Cosh() }
func (r Rational) Tanh() Scalar  { return toFloat(r).Tanh() }
func (r Rational) Asinh() Scalar { return toFloat(r).Asinh() }
func (r Rational) Acosh() Scalar { return toFloat(r).Acosh() }
func (r Rational) Atanh() Scalar { return toFloat(r).Atanh() }
func (r Rational) Exp() Scalar   { return toFloat(r).Exp() }
func (r Rational) Ln() Scalar    { return toFloat(r).Ln() }
func (r Rational) Log10() Scalar { return toFloat(r).Log10() }
func (r Rational) Log2() Scalar  { return toFloat(r).Log2() }
func (r Rational) LogBase(b Scalar) Scalar { return toFloat(r).LogBase(b) }

func (r Rational) Fract() Scalar {
	whole := new(big.Int).Quo(r.Num(), r.Denom())
	wholeRat := new(big.Rat).SetInt(whole)
	return Rational{new(big.Rat).Sub(r.Rat, wholeRat)}
}

func (r Rational) Floor() Scalar {
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(r.Num(), r.Denom(), m)
	return Rational{new(big.Rat).SetInt(q)}
}

func (r Rational) Ceil() Scalar {
	f := r.Floor().(Rational)
	if f.Cmp(r) == 0 {
		return f
	}
	return Rational{new(big.Rat).Add(f.Rat, big.NewRat(1, 1))}
}

func (r Rational) Round() Scalar {
	half := big.NewRat(1, 2)
	shifted := new(big.Rat).Add(r.Rat, half)
	return Rational{shifted}.Floor()
}

func (r Rational) Abs() Scalar {
	return Rational{new(big.Rat).Abs(r.Rat)}
}

func (r Rational) IsZero() bool     { return r.Sign() == 0 }
func (r Rational) IsOne() bool      { return r.Rat.Cmp(big.NewRat(1, 1)) == 0 }
func (r Rational) IsNaN() bool      { return false }
func (r Rational) IsNegative() bool { return r.Sign() < 0 }
func (r Rational) IsPositive() bool { return r.Sign() > 0 }

func (r Rational) Cmp(o Scalar) int {
	a, b := promote(r, o)
	if af, ok := a.(Float); ok {
		return af.Cmp(b)
	}
	return a.(Rational).Rat.Cmp(b.(Rational).Rat)
}

func (r Rational) String() string {
	return formatSignificant(r.Float())
}

func (r Rational) Float() float64 {
	f, _ := r.Rat.Float64()
	return f
}
