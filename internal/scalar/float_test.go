package scalar

import "testing"

func flt(v float64) Scalar {
	s, ok := NewFloatFromFloat(v)
	if !ok {
		panic("bad float literal in test")
	}
	return s
}

func TestFloatArithmetic(t *testing.T) {
	got := flt(1.5).Add(flt(2.25))
	if got.Cmp(flt(3.75)) != 0 {
		t.Fatalf("1.5+2.25 = %s, want 3.75", got)
	}
}

func TestFloatDivByZeroIsNaN(t *testing.T) {
	got := flt(1).Div(flt(0))
	if !got.IsNaN() {
		t.Fatal("1/0 in float mode should be NaN-flagged, not panic")
	}
}

func TestFloatTranscendentals(t *testing.T) {
	got := flt(0).Sin()
	if got.Cmp(flt(0)) != 0 {
		t.Fatalf("sin(0) = %s, want 0", got)
	}
}

func TestPromoteMixesToFloat(t *testing.T) {
	r := rat(1, 2)
	f := flt(0.5)
	got := r.Add(f)
	if got.IsRational() {
		t.Fatal("rational + float should promote to float")
	}
	if got.Cmp(flt(1)) != 0 {
		t.Fatalf("0.5+0.5 = %s, want 1", got)
	}
}

func TestFloatIsOne(t *testing.T) {
	if !flt(1).IsOne() {
		t.Fatal("1.0 should be IsOne")
	}
	if flt(1.5).IsOne() {
		t.Fatal("1.5 should not be IsOne")
	}
}
