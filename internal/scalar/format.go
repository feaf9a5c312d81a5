package scalar

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// sigFigs is the number of significant figures both Scalar backends render
// to, grounded on original_source/src/tests.rs's rendered outputs (e.g.
// "1234567890000000" -> "1.2346e15", "1/2pi" -> "0.15915", "1/2*pi" ->
// "1.5708"): every one of those outputs carries exactly 5 significant
// digits. There is no scalar.rs in the retrieved original_source pack to
// read the formatting rule from directly, so it is reverse-engineered from
// these rendered test outputs.
const sigFigs = 5

// scientificExponentBound is the largest decimal exponent (in either
// direction) formatSignificant renders in plain decimal; outside that range
// it switches to scientific notation. Chosen so every original_source
// rendering lands on the correct side: "125" (exponent 2) stays plain,
// "1234567890000000" (exponent 15) and "2^3^4^5" = 1152921504606846976
// (exponent 18) go scientific, and "1e-2" (exponent -2) stays plain.
const scientificExponentBound = 4

// formatSignificant rounds v to sigFigs significant digits and renders it
// in plain decimal when its decimal exponent fits within
// scientificExponentBound, or in lowercase scientific notation ("1.2346e15")
// otherwise, trimming unnecessary trailing fractional zeros either way.
func formatSignificant(v float64) string {
	if v == 0 {
		return "0"
	}
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	exp := int(math.Floor(math.Log10(v)))
	mantissa := v / math.Pow(10, float64(exp))

	scale := math.Pow(10, float64(sigFigs-1))
	mantissa = math.Round(mantissa*scale) / scale
	if mantissa >= 10 {
		// Rounding the mantissa up (e.g. 9.99996 -> 10.000) rolls into the
		// next decimal exponent.
		mantissa /= 10
		exp++
	}

	if exp > scientificExponentBound || exp < -scientificExponentBound {
		m := trimTrailingZeros(strconv.FormatFloat(mantissa, 'f', sigFigs-1, 64))
		return fmt.Sprintf("%s%se%d", sign, m, exp)
	}

	decimals := sigFigs - 1 - exp
	if decimals < 0 {
		decimals = 0
	}
	value := mantissa * math.Pow(10, float64(exp))
	return sign + trimTrailingZeros(strconv.FormatFloat(value, 'f', decimals, 64))
}

func trimTrailingZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
