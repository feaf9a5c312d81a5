// Package quantity implements the central value type of the calculator: a
// Scalar paired with a Unit, with arithmetic over compatible units.
// Multiplicative operators combine unit exponents directly; there is no
// "common factor" search (spec §4.8). The layout is grounded on robpike-ivy's value package shape
// (numeric core + unit bookkeeping split across small files).
package quantity

import (
	"math/big"

	"github.com/jharlow/unitcalc/internal/scalar"
	"github.com/jharlow/unitcalc/internal/unit"
)

// Quantity is scalar*unit, the value every successful evaluation produces.
type Quantity struct {
	Scalar scalar.Scalar
	Unit   unit.Unit
}

// New builds a Quantity, defaulting to unitless if u is nil.
func New(s scalar.Scalar, u unit.Unit) Quantity {
	if u == nil {
		u = unit.Unitless()
	}
	return Quantity{Scalar: s, Unit: u}
}

// Unitless reports whether q carries no dimension.
func (q Quantity) Unitless() bool {
	return q.Unit.IsUnitless()
}

// Equal reports equality per spec §4.8: equal units and equal scalars.
func (q Quantity) Equal(o Quantity) bool {
	return q.Unit.Equal(o.Unit) && q.Scalar.Cmp(o.Scalar) == 0
}

// Compatible reports whether q and o share the same unit vector.
func (q Quantity) Compatible(o Quantity) bool {
	return q.Unit.Equal(o.Unit)
}

// Cmp orders q against o. Precondition: q and o have compatible units; the
// caller (evaluate) is responsible for raising IncompatibleUnit before
// calling this, per spec §4.8 ("requires equal units, else panic").
func (q Quantity) Cmp(o Quantity) int {
	if !q.Compatible(o) {
		panic("quantity: Cmp called on incompatible units")
	}
	return q.Scalar.Cmp(o.Scalar)
}

// ConvertTo attaches o's unit to q's scalar unchanged; it does not rescale.
// Precondition: q.Compatible(o). Callers needing cross-unit conversion via a
// registry factor should use ConvertToFactor instead.
func (q Quantity) ConvertTo(o Quantity) Quantity {
	return Quantity{Scalar: q.Scalar, Unit: o.Unit}
}

// ConvertToFactor rescales q's scalar by fromFactor/toFactor and attaches
// toUnit, implementing spec §4.8's
// "a.value * to_base_factor(a.unit) / to_base_factor(b.unit)".
func ConvertToFactor(q Quantity, fromFactor, toFactor scalar.Scalar, toUnit unit.Unit) Quantity {
	scaled := q.Scalar.Mul(fromFactor).Div(toFactor)
	return Quantity{Scalar: scaled, Unit: toUnit}
}

// Add returns q+o assuming compatible units (caller enforces via evaluate).
func (q Quantity) Add(o Quantity) Quantity {
	return Quantity{Scalar: q.Scalar.Add(o.Scalar), Unit: q.Unit}
}

// Mul returns q*o with unit exponents summed.
func (q Quantity) Mul(o Quantity) Quantity {
	return Quantity{Scalar: q.Scalar.Mul(o.Scalar), Unit: q.Unit.Mul(o.Unit)}
}

// Div returns q/o with unit exponents subtracted.
func (q Quantity) Div(o Quantity) Quantity {
	return Quantity{Scalar: q.Scalar.Div(o.Scalar), Unit: q.Unit.Div(o.Unit)}
}

// Pow raises q to expScalar, scaling the unit exponents by expRat (the same
// value expressed as a big.Rat, which the evaluator already needs to scale
// the unit vector). The scalar power is delegated to Scalar.Pow; the unit
// vector is scaled exactly via big.Rat multiplication (spec §3: "power
// scales all exponents by the given exponent").
func (q Quantity) Pow(expScalar scalar.Scalar, expRat *big.Rat) Quantity {
	return Quantity{Scalar: q.Scalar.Pow(expScalar), Unit: q.Unit.Pow(expRat)}
}

// Neg returns -q.
func (q Quantity) Neg() Quantity {
	return Quantity{Scalar: q.Scalar.Neg(), Unit: q.Unit}
}
