package quantity

import (
	"testing"

	"github.com/jharlow/unitcalc/internal/unit"
)

func TestStringUnitless(t *testing.T) {
	q := New(rat(5, 1), nil)
	if got := q.String(); got != "5" {
		t.Fatalf("unitless String = %q, want 5", got)
	}
}

func TestStringWithUnit(t *testing.T) {
	q := New(rat(5, 1), unit.Single(unit.Meter))
	if got := q.String(); got != "5 m" {
		t.Fatalf("5m String = %q, want \"5 m\"", got)
	}
}

func TestToStringOuterMatchesString(t *testing.T) {
	q := New(rat(7, 2), unit.Single(unit.Second).Inv())
	if q.ToStringOuter() != q.String() {
		t.Fatal("ToStringOuter should match String in this implementation")
	}
}
