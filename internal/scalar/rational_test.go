package scalar

import (
	"math/big"
	"testing"
)

func rat(n, d int64) Scalar {
	return Rational{big.NewRat(n, d)}
}

func TestRationalArithmetic(t *testing.T) {
	tests := []struct {
		name string
		a, b Scalar
		op   func(a, b Scalar) Scalar
		want Scalar
	}{
		{"add", rat(1, 2), rat(1, 3), Scalar.Add, rat(5, 6)},
		{"sub", rat(1, 2), rat(1, 3), Scalar.Sub, rat(1, 6)},
		{"mul", rat(2, 3), rat(3, 4), Scalar.Mul, rat(1, 2)},
		{"div", rat(2, 3), rat(4, 3), Scalar.Div, rat(1, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.op(tt.a, tt.b)
			if got.Cmp(tt.want) != 0 {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
			if !got.IsRational() {
				t.Fatalf("result should stay rational")
			}
		})
	}
}

func TestRationalIsOne(t *testing.T) {
	if !rat(1, 1).IsOne() {
		t.Fatal("1/1 should be IsOne")
	}
	if !rat(4, 4).IsOne() {
		t.Fatal("4/4 reduces to 1 and should be IsOne")
	}
	if rat(3, 2).IsOne() {
		t.Fatal("3/2 should not be IsOne")
	}
}

func TestRationalPowIntegerExponent(t *testing.T) {
	got := rat(2, 1).Pow(rat(3, 1))
	if got.Cmp(rat(8, 1)) != 0 {
		t.Fatalf("2^3 = %s, want 8", got)
	}

	got = rat(2, 1).Pow(rat(-1, 1))
	if got.Cmp(rat(1, 2)) != 0 {
		t.Fatalf("2^-1 = %s, want 1/2", got)
	}
}

func TestRationalPowNonIntegerPromotesToFloat(t *testing.T) {
	got := rat(4, 1).Pow(rat(1, 2))
	if got.IsRational() {
		t.Fatalf("4^(1/2) should promote to float, got %T", got)
	}
	if got.Cmp(rat(2, 1)) != 0 {
		t.Fatalf("sqrt(4) = %s, want 2", got)
	}
}

func TestRationalFloorCeilRound(t *testing.T) {
	v := rat(7, 2) // 3.5
	if v.Floor().Cmp(rat(3, 1)) != 0 {
		t.Fatalf("floor(3.5) = %s, want 3", v.Floor())
	}
	if v.Ceil().Cmp(rat(4, 1)) != 0 {
		t.Fatalf("ceil(3.5) = %s, want 4", v.Ceil())
	}
	if v.Round().Cmp(rat(4, 1)) != 0 {
		t.Fatalf("round(3.5) = %s, want 4", v.Round())
	}

	neg := rat(-7, 2) // -3.5
	if neg.Floor().Cmp(rat(-4, 1)) != 0 {
		t.Fatalf("floor(-3.5) = %s, want -4", neg.Floor())
	}
}

func TestRationalModIntegerOnly(t *testing.T) {
	got := rat(7, 1).Mod(rat(3, 1))
	if got.Cmp(rat(1, 1)) != 0 {
		t.Fatalf("7 mod 3 = %s, want 1", got)
	}
}

func TestRationalFractZero(t *testing.T) {
	if !rat(4, 1).Fract().IsZero() {
		t.Fatal("fract(4) should be zero")
	}
	if rat(9, 2).Fract().IsZero() {
		t.Fatal("fract(4.5) should not be zero")
	}
}
