package scalar

import (
	"math"

	"github.com/shopspring/decimal"
)

// Float is an inexact Scalar backed by shopspring/decimal.Decimal, the way
// other_examples' gval.go wires decimal.Decimal into a four-function
// calculator language. Transcendentals round-trip through float64 via
// Float64/NewFromFloat since decimal.Decimal has no trig/log API.
type Float struct {
	decimal.Decimal
	nan bool
}

func (f Float) IsRational() bool { return false }

func wrapFloat(v float64) Scalar {
	s, ok := NewFloatFromFloat(v)
	if !ok {
		return nan()
	}
	return s
}

func (f Float) viaMath(fn func(float64) float64) Scalar {
	if f.nan {
		return f
	}
	return wrapFloat(fn(f.Float()))
}

func (f Float) Add(o Scalar) Scalar {
	ot := toFloat(o).(Float)
	if f.nan || ot.nan {
		return nan()
	}
	return Float{f.Decimal.Add(ot.Decimal), false}
}

func (f Float) Sub(o Scalar) Scalar {
	ot := toFloat(o).(Float)
	if f.nan || ot.nan {
		return nan()
	}
	return Float{f.Decimal.Sub(ot.Decimal), false}
}

func (f Float) Mul(o Scalar) Scalar {
	ot := toFloat(o).(Float)
	if f.nan || ot.nan {
		return nan()
	}
	return Float{f.Decimal.Mul(ot.Decimal), false}
}

func (f Float) Div(o Scalar) Scalar {
	ot := toFloat(o).(Float)
	if f.nan || ot.nan || ot.Decimal.IsZero() {
		return nan()
	}
	return Float{f.Decimal.DivRound(ot.Decimal, 20), false}
}

func (f Float) Mod(o Scalar) Scalar {
	ot := toFloat(o).(Float)
	if f.nan || ot.nan || ot.Decimal.IsZero() {
		return nan()
	}
	return Float{f.Decimal.Mod(ot.Decimal), false}
}

func (f Float) Neg() Scalar {
	if f.nan {
		return f
	}
	return Float{f.Decimal.Neg(), false}
}

func (f Float) Pow(o Scalar) Scalar {
	ot := toFloat(o).(Float)
	if f.nan || ot.nan {
		return nan()
	}
	r := math.Pow(f.Float(), ot.Float())
	if math.IsNaN(r) {
		return nan()
	}
	return wrapFloat(r)
}

func (f Float) Sin() Scalar   { return f.viaMath(math.Sin) }
func (f Float) Cos() Scalar   { return f.viaMath(math.Cos) }
func (f Float) Tan() Scalar   { return f.viaMath(math.Tan) }
func (f Float) Asin() Scalar  { return f.viaMath(math.Asin) }
func (f Float) Acos() Scalar  { return f.viaMath(math.Acos) }
func (f Float) Atan() Scalar  { return f.viaMath(math.Atan) }
func (f Float) Sinh() Scalar  { return f.viaMath(math.Sinh) }
func (f Float) Cosh() Scalar  { return f.viaMath(math.Cosh) }
func (f Float) Tanh() Scalar  { return f.viaMath(math.Tanh) }
func (f Float) Asinh() Scalar { return f.viaMath(math.Asinh) }
func (f Float) Acosh() Scalar { return f.viaMath(math.Acosh) }
func (f Float) Atanh() Scalar { return f.viaMath(math.Atanh) }
func (f Float) Exp() Scalar   { return f.viaMath(math.Exp) }
func (f Float) Ln() Scalar    { return f.viaMath(math.Log) }
func (f Float) Log10() Scalar { return f.viaMath(math.Log10) }
func (f Float) Log2() Scalar  { return f.viaMath(math.Log2) }

func (f Float) LogBase(b Scalar) Scalar {
	bt := toFloat(b).(Float)
	if f.nan || bt.nan {
		return nan()
	}
	return wrapFloat(math.Log(f.Float()) / math.Log(bt.Float()))
}

func (f Float) Fract() Scalar {
	if f.nan {
		return f
	}
	return Float{f.Decimal.Sub(f.Decimal.Truncate(0)), false}
}

func (f Float) Floor() Scalar {
	if f.nan {
		return f
	}
	return Float{f.Decimal.Floor(), false}
}

func (f Float) Ceil() Scalar {
	if f.nan {
		return f
	}
	return Float{f.Decimal.Ceil(), false}
}

func (f Float) Round() Scalar {
	if f.nan {
		return f
	}
	return Float{f.Decimal.Round(0), false}
}

func (f Float) Abs() Scalar {
	if f.nan {
		return f
	}
	return Float{f.Decimal.Abs(), false}
}

func (f Float) IsZero() bool     { return !f.nan && f.Decimal.IsZero() }
func (f Float) IsOne() bool      { return !f.nan && f.Decimal.Equal(decimal.NewFromInt(1)) }
func (f Float) IsNaN() bool      { return f.nan }
func (f Float) IsNegative() bool { return !f.nan && f.Decimal.IsNegative() }
func (f Float) IsPositive() bool { return !f.nan && f.Decimal.IsPositive() }

func (f Float) Cmp(o Scalar) int {
	ot := toFloat(o).(Float)
	if f.nan || ot.nan {
		return 0
	}
	return f.Decimal.Cmp(ot.Decimal)
}

func (f Float) String() string {
	if f.nan {
		return "NaN"
	}
	return formatSignificant(f.Float())
}

func (f Float) Float() float64 {
	if f.nan {
		return math.NaN()
	}
	v, _ := f.Decimal.Float64()
	return v
}
