package quantity

import (
	"math/big"
	"testing"

	"github.com/jharlow/unitcalc/internal/scalar"
	"github.com/jharlow/unitcalc/internal/unit"
)

func rat(n, d int64) scalar.Scalar {
	return scalar.Rational{Rat: big.NewRat(n, d)}
}

func TestAddKeepsUnit(t *testing.T) {
	a := New(rat(2, 1), unit.Single(unit.Meter))
	b := New(rat(3, 1), unit.Single(unit.Meter))
	got := a.Add(b)
	if got.Scalar.Cmp(rat(5, 1)) != 0 {
		t.Fatalf("2m+3m scalar = %s, want 5", got.Scalar)
	}
	if !got.Unit.Equal(unit.Single(unit.Meter)) {
		t.Fatalf("2m+3m unit = %v, want m", got.Unit)
	}
}

func TestMulCombinesUnits(t *testing.T) {
	a := New(rat(2, 1), unit.Single(unit.Meter))
	b := New(rat(3, 1), unit.Single(unit.Second))
	got := a.Mul(b)
	want := unit.Single(unit.Meter).Mul(unit.Single(unit.Second))
	if !got.Unit.Equal(want) {
		t.Fatalf("m*s unit = %v, want %v", got.Unit, want)
	}
}

func TestCompatible(t *testing.T) {
	a := New(rat(1, 1), unit.Single(unit.Meter))
	b := New(rat(2, 1), unit.Single(unit.Meter))
	c := New(rat(1, 1), unit.Single(unit.Second))
	if !a.Compatible(b) {
		t.Fatal("meters should be compatible with meters")
	}
	if a.Compatible(c) {
		t.Fatal("meters should not be compatible with seconds")
	}
}

func TestConvertToFactor(t *testing.T) {
	// 3 ft, where ft's coefficient (0.3048) is already baked into the
	// scalar, converted "to" 1 m: divide by 1 (m's own coefficient).
	threeFeet := New(rat(9144, 10000), unit.Single(unit.Meter)) // 3*0.3048
	got := ConvertToFactor(threeFeet, rat(1, 1), rat(1, 1), unit.Single(unit.Meter))
	if got.Scalar.Cmp(rat(9144, 10000)) != 0 {
		t.Fatalf("convert-to-meters scalar changed unexpectedly: %s", got.Scalar)
	}
}

func TestNegPreservesUnit(t *testing.T) {
	a := New(rat(5, 1), unit.Single(unit.Meter))
	got := a.Neg()
	if got.Scalar.Cmp(rat(-5, 1)) != 0 {
		t.Fatalf("neg scalar = %s, want -5", got.Scalar)
	}
	if !got.Unit.Equal(unit.Single(unit.Meter)) {
		t.Fatal("neg should preserve unit")
	}
}
