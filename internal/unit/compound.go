package unit

import "github.com/jharlow/unitcalc/internal/scalar"

// CompoundUnit is a named surface unit (e.g. "ft") that expands to a
// coefficient and a base Unit (spec §3). The coefficient is flagged
// rational or float at declaration time, matching whichever Scalar mode the
// static table chose for it (exact fractions like 1/1000 for "mm" are
// rational; others, such as "lb", are declared as float).
type CompoundUnit struct {
	Name        string
	Coefficient scalar.Scalar
	Unit        Unit
}

// ToBaseFactor returns the coefficient that scales a quantity expressed in
// this compound unit into its base-unit equivalent (spec §4.8).
func (c CompoundUnit) ToBaseFactor() scalar.Scalar {
	return c.Coefficient
}
