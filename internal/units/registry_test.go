package units

import "testing"

func TestDefaultRegistryResolvesBaseUnits(t *testing.T) {
	r := Default()
	for _, name := range []string{"s", "m", "kg", "ft", "mm"} {
		if _, ok := r.LookupUnit(name); !ok {
			t.Errorf("LookupUnit(%q) should succeed", name)
		}
	}
}

func TestDefaultRegistryResolvesConstants(t *testing.T) {
	r := Default()
	for _, name := range []string{"pi", "π", "e"} {
		if _, ok := r.LookupConstant(name); !ok {
			t.Errorf("LookupConstant(%q) should succeed", name)
		}
	}
}

func TestDefaultRegistryUnknownNameFails(t *testing.T) {
	r := Default()
	if _, ok := r.LookupUnit("bogus"); ok {
		t.Fatal("LookupUnit(bogus) should fail")
	}
	if _, ok := r.LookupConstant("bogus"); ok {
		t.Fatal("LookupConstant(bogus) should fail")
	}
}

func TestIsKnownWord(t *testing.T) {
	r := Default()
	if !r.IsKnownWord("m") {
		t.Fatal("m should be a known word (a unit)")
	}
	if !r.IsKnownWord("pi") {
		t.Fatal("pi should be a known word (a constant)")
	}
	if r.IsKnownWord("notaword") {
		t.Fatal("notaword should not be known")
	}
}

func TestFeetToMetersCoefficient(t *testing.T) {
	r := Default()
	u, ok := r.LookupUnit("ft")
	if !ok {
		t.Fatal("ft should be registered")
	}
	if u.Coefficient.String() != "0.3048" {
		t.Fatalf("ft coefficient = %s, want 0.3048", u.Coefficient)
	}
}

func TestPercentIsNotAUnit(t *testing.T) {
	// "%" is lexed as the Modulo operator, never as a word-class run, so it
	// must not be reachable through the unit registry.
	if _, ok := Default().LookupUnit("%"); ok {
		t.Fatal("\"%\" must not resolve as a unit: it's claimed by the Modulo operator at lex time")
	}
}
