package units

import (
	"math"
	"math/big"

	"github.com/jharlow/unitcalc/internal/quantity"
	"github.com/jharlow/unitcalc/internal/scalar"
	"github.com/jharlow/unitcalc/internal/unit"
)

func rat(num, den int64) scalar.Scalar {
	return scalar.Rational{Rat: big.NewRat(num, den)}
}

func flt(f float64) scalar.Scalar {
	s, ok := scalar.NewFloatFromFloat(f)
	if !ok {
		panic("units: bad float literal")
	}
	return s
}

func one() scalar.Scalar { return rat(1, 1) }

func reg(r *Registry, name string, coeff scalar.Scalar, u unit.Unit) {
	r.compounds[name] = unit.CompoundUnit{Name: name, Coefficient: coeff, Unit: u}
}

// registerBaseUnits registers the seven SI base units plus their bare
// symbols at coefficient 1.
func registerBaseUnits(r *Registry) {
	reg(r, "s", one(), unit.Single(unit.Second))
	reg(r, "m", one(), unit.Single(unit.Meter))
	reg(r, "kg", one(), unit.Single(unit.Kilogram))
	reg(r, "a", one(), unit.Single(unit.Ampere))
	reg(r, "k", one(), unit.Single(unit.Kelvin))
	reg(r, "mol", one(), unit.Single(unit.Mole))
	reg(r, "cd", one(), unit.Single(unit.Candela))
}

// registerDerivedUnits registers SI-prefixed forms, imperial units, time
// units, and derived mechanical/electrical units (spec §B.2).
func registerDerivedUnits(r *Registry) {
	meter := unit.Single(unit.Meter)
	second := unit.Single(unit.Second)
	gram := unit.Single(unit.Kilogram)

	// SI length prefixes.
	reg(r, "km", rat(1000, 1), meter)
	reg(r, "cm", rat(1, 100), meter)
	reg(r, "mm", rat(1, 1000), meter)
	reg(r, "um", rat(1, 1000000), meter)
	reg(r, "nm", rat(1, 1000000000), meter)

	// SI time prefixes.
	reg(r, "ms", rat(1, 1000), second)
	reg(r, "us", rat(1, 1000000), second)
	reg(r, "ns", rat(1, 1000000000), second)

	// Time units larger than a second.
	reg(r, "min", rat(60, 1), second)
	reg(r, "hr", rat(3600, 1), second)
	reg(r, "day", rat(86400, 1), second)

	// Imperial length.
	reg(r, "in", rat(254, 10000), meter)  // 0.0254 m
	reg(r, "ft", rat(3048, 10000), meter) // 0.3048 m
	reg(r, "yd", rat(9144, 10000), meter) // 0.9144 m
	reg(r, "mi", flt(1609.344), meter)

	// Mass.
	reg(r, "g", rat(1, 1000), gram)
	reg(r, "lb", flt(0.45359237), gram)
	reg(r, "oz", flt(0.028349523125), gram)

	// Derived mechanical/electrical units, expressed in base-unit exponents.
	sq := big.NewRat(2, 1)
	newton := unit.Single(unit.Kilogram).Mul(unit.Single(unit.Meter)).Div(unit.Single(unit.Second).Pow(sq))
	reg(r, "n", one(), newton)

	joule := newton.Mul(meter)
	reg(r, "j", one(), joule)

	watt := joule.Div(second)
	reg(r, "w", one(), watt)

	hertz := unit.Unitless().Div(second)
	reg(r, "hz", one(), hertz)

	pascal := newton.Div(meter.Pow(sq))
	reg(r, "pa", one(), pascal)

	coulomb := unit.Single(unit.Ampere).Mul(second)
	reg(r, "c_unit", one(), coulomb) // "C" clashes with the speed-of-light constant's symbol

	volt := watt.Div(unit.Single(unit.Ampere))
	reg(r, "v", one(), volt)

	ohm := volt.Div(unit.Single(unit.Ampere))
	reg(r, "ohm", one(), ohm)
}

// registerConstants registers the named mathematical/physical constants
// recovered from original_source/src/tokens.rs (spec §B.2).
func registerConstants(r *Registry) {
	r.constants["pi"] = quantity.New(flt(math.Pi), unit.Unitless())
	r.constants["π"] = r.constants["pi"]
	r.constants["e"] = quantity.New(flt(math.E), unit.Unitless())
	r.constants["phi"] = quantity.New(flt(1.618033988749895), unit.Unitless())
	r.constants["φ"] = r.constants["phi"]
	r.constants["c"] = quantity.New(flt(299792458), unit.Single(unit.Meter).Div(unit.Single(unit.Second)))
	r.constants["g"] = quantity.New(flt(9.80665), unit.Single(unit.Meter).Div(unit.Single(unit.Second).Pow(big.NewRat(2, 1))))
}
