package unit

import (
	"math/big"
	"sort"
	"strings"
)

// baseOrder fixes the printed order of base symbols, matching spec §4.7's
// listed order (s, m, kg, a, k, mol, c — "c" stands for candela here,
// distinct from the coulomb unit symbol registered in the units table).
var baseOrder = []Base{Second, Meter, Kilogram, Ampere, Kelvin, Mole, Candela}

// String renders u as a numerator block and a denominator block joined by
// "/", using literal "^n" for exponents other than ±1 and "b⁻¹" for a
// lone negative-one base with no numerator, following
// original_source/src/quantity/unit.rs's Unit::to_string exactly.
func (u Unit) String() string {
	if u.IsUnitless() {
		return ""
	}

	bases := make([]Base, 0, len(u))
	for b := range u {
		bases = append(bases, b)
	}
	sort.Slice(bases, func(i, j int) bool { return order(bases[i]) < order(bases[j]) })

	topEmpty, bottomEmpty := true, true
	for _, b := range bases {
		if u[b].Sign() > 0 {
			topEmpty = false
		} else {
			bottomEmpty = false
		}
	}

	var top, bottom strings.Builder
	one := big.NewRat(1, 1)
	negOne := big.NewRat(-1, 1)

	for _, b := range bases {
		p := u[b]
		sym := b.String()
		switch {
		case p.Cmp(one) == 0:
			top.WriteString(sym + "·")
		case p.Cmp(negOne) == 0:
			if topEmpty {
				bottom.WriteString(sym + "⁻¹·")
			} else {
				bottom.WriteString(sym + "·")
			}
		case p.Sign() > 0:
			top.WriteString(sym + "^" + ratString(p) + "·")
		default:
			if topEmpty {
				bottom.WriteString(sym + "^" + ratString(p) + "·")
			} else {
				bottom.WriteString(sym + "^" + ratString(new(big.Rat).Neg(p)) + "·")
			}
		}
	}

	t := strings.TrimSuffix(top.String(), "·")
	b := strings.TrimSuffix(bottom.String(), "·")

	switch {
	case topEmpty:
		return b
	case bottomEmpty:
		return t
	default:
		return t + "/" + b
	}
}

func order(b Base) int {
	for i, ob := range baseOrder {
		if ob == b {
			return i
		}
	}
	return len(baseOrder)
}

func ratString(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	return r.RatString()
}
