package scalar

import (
	"math"
	"math/big"
	"testing"
)

// TestFormatSignificantMatchesReference pins formatSignificant against the
// rendered outputs in original_source/src/tests.rs (big_numbers, operators):
// every scalar renders to 5 significant figures, switching to scientific
// notation once the magnitude outgrows plain decimal.
func TestFormatSignificantMatchesReference(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{1234567890000000, "1.2346e15"},
		{1152921504606846976, "1.1529e18"}, // 2^3^4^5 = ((2^3)^4)^5
		{1.0 / (2 * math.Pi), "0.15915"},
		{math.Pi / 2, "1.5708"},
		{100, "100"},
		{0.01, "0.01"},
		{1, "1"},
		{125, "125"},
		{0.5, "0.5"},
		{0.25, "0.25"},
		{-81, "-81"},
	}
	for _, tt := range tests {
		if got := formatSignificant(tt.v); got != tt.want {
			t.Errorf("formatSignificant(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestRationalStringUsesSignificantFigures(t *testing.T) {
	// 3048/1000 reduced is 381/125 = 3.048 exactly, which already fits in
	// 5 significant figures.
	r := Rational{big.NewRat(3048, 1000)}
	if r.String() != "3.048" {
		t.Fatalf("String() = %q, want 3.048", r.String())
	}
}

func TestFloatStringUsesSignificantFigures(t *testing.T) {
	f := wrapFloat(math.Pi / 2).(Float)
	if f.String() != "1.5708" {
		t.Fatalf("String() = %q, want 1.5708", f.String())
	}
}
