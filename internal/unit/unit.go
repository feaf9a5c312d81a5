// Package unit implements the exponent-vector unit algebra of spec §3: a
// Unit is a mapping from base physical dimension to a rational exponent,
// with the invariant that any base with exponent exactly zero is absent
// from the map.
package unit

import "math/big"

// Base is one of the seven SI base dimensions.
type Base int

const (
	Second Base = iota
	Meter
	Kilogram
	Ampere
	Kelvin
	Mole
	Candela
)

var baseNames = map[Base]string{
	Second:   "s",
	Meter:    "m",
	Kilogram: "kg",
	Ampere:   "A",
	Kelvin:   "K",
	Mole:     "mol",
	Candela:  "cd",
}

func (b Base) String() string { return baseNames[b] }

// Unit is an exponent vector over the seven base dimensions. The zero value
// is unitless. Nil and empty Units are both valid "unitless" representations;
// callers should prefer Unitless() for clarity.
type Unit map[Base]*big.Rat

// Unitless returns the empty unit.
func Unitless() Unit { return Unit{} }

// IsUnitless reports whether every exponent in u is zero (equivalently, u
// has no entries, given the closure invariant).
func (u Unit) IsUnitless() bool {
	return len(u) == 0
}

// Single builds a unit with exponent 1 on a single base, e.g. Single(Meter)
// for plain meters.
func Single(b Base) Unit {
	return Unit{b: big.NewRat(1, 1)}
}

// clone returns a defensive copy of u.
func (u Unit) clone() Unit {
	out := make(Unit, len(u))
	for b, e := range u {
		out[b] = new(big.Rat).Set(e)
	}
	return out
}

// normalize removes any zero-exponent entries, maintaining the closure
// invariant from spec §3.
func (u Unit) normalize() Unit {
	for b, e := range u {
		if e.Sign() == 0 {
			delete(u, b)
		}
	}
	return u
}

// Equal reports whether two units are identical exponent vectors
// ("compatible" in spec terms).
func (u Unit) Equal(o Unit) bool {
	if len(u) != len(o) {
		return false
	}
	for b, e := range u {
		oe, ok := o[b]
		if !ok || e.Cmp(oe) != 0 {
			return false
		}
	}
	return true
}

// Mul returns the unit product: exponents sum, zeros are dropped.
func (u Unit) Mul(o Unit) Unit {
	out := u.clone()
	for b, e := range o {
		if cur, ok := out[b]; ok {
			out[b] = new(big.Rat).Add(cur, e)
		} else {
			out[b] = new(big.Rat).Set(e)
		}
	}
	return out.normalize()
}

// Div returns the unit quotient: exponents subtract, zeros are dropped.
func (u Unit) Div(o Unit) Unit {
	out := u.clone()
	for b, e := range o {
		if cur, ok := out[b]; ok {
			out[b] = new(big.Rat).Sub(cur, e)
		} else {
			out[b] = new(big.Rat).Neg(e)
		}
	}
	return out.normalize()
}

// Pow scales every exponent by exp.
func (u Unit) Pow(exp *big.Rat) Unit {
	out := make(Unit, len(u))
	for b, e := range u {
		out[b] = new(big.Rat).Mul(e, exp)
	}
	return out.normalize()
}

// Inv is shorthand for Unitless().Div(u), the unit of a reciprocal value.
func (u Unit) Inv() Unit {
	return Unitless().Div(u)
}
