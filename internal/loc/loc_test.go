package loc

import "testing"

func TestEnd(t *testing.T) {
	s := Span{Pos: 3, Len: 4}
	if s.End() != 7 {
		t.Fatalf("End() = %d, want 7", s.End())
	}
}

func TestZero(t *testing.T) {
	if !(Span{Pos: 5, Len: 0}).Zero() {
		t.Fatal("zero-length span should report Zero")
	}
	if (Span{Pos: 5, Len: 1}).Zero() {
		t.Fatal("one-rune span should not report Zero")
	}
}

func TestCover(t *testing.T) {
	a := Span{Pos: 2, Len: 3} // [2,5)
	b := Span{Pos: 8, Len: 2} // [8,10)
	got := Cover(a, b)
	if got.Pos != 2 || got.End() != 10 {
		t.Fatalf("Cover = %+v, want Pos=2 End=10", got)
	}

	// order shouldn't matter
	got2 := Cover(b, a)
	if got2 != got {
		t.Fatalf("Cover(b,a) = %+v, want %+v", got2, got)
	}
}

func TestAt(t *testing.T) {
	s := At(9)
	if s.Pos != 9 || s.Len != 0 {
		t.Fatalf("At(9) = %+v, want Pos=9 Len=0", s)
	}
}
