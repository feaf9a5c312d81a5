package token

import "testing"

func TestContextBindAndLookup(t *testing.T) {
	ctx := NewContext()
	if ctx.Has("x") {
		t.Fatal("fresh context should not have x bound")
	}
	ctx.Bind("x", Quantity{})
	if !ctx.Has("x") {
		t.Fatal("x should be bound after Bind")
	}
	if _, ok := ctx.Lookup("x"); !ok {
		t.Fatal("Lookup(x) should succeed after Bind")
	}
}

func TestContextBindOverwrites(t *testing.T) {
	ctx := NewContext()
	ctx.Bind("x", Quantity{})
	v1, _ := ctx.Lookup("x")
	ctx.Bind("x", Quantity{})
	v2, _ := ctx.Lookup("x")
	if v1 == nil || v2 == nil {
		t.Fatal("both bindings should resolve")
	}
}

func TestContextLookupMissing(t *testing.T) {
	ctx := NewContext()
	if _, ok := ctx.Lookup("nope"); ok {
		t.Fatal("Lookup of an unbound name should fail")
	}
}
