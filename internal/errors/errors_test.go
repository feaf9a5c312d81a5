package errors

import (
	"strings"
	"testing"

	"github.com/jharlow/unitcalc/internal/loc"
)

func TestNewAndIs(t *testing.T) {
	err := New(Undefined, loc.Span{Pos: 3, Len: 4}, "unknown name %q", "foo")
	if !Is(err, Undefined) {
		t.Fatal("Is(err, Undefined) should be true")
	}
	if Is(err, Syntax) {
		t.Fatal("Is(err, Syntax) should be false")
	}
}

func TestErrorMessageIncludesKindAndPosition(t *testing.T) {
	err := New(ZeroDivision, loc.Span{Pos: 5, Len: 1}, "division by zero")
	msg := err.Error()
	if !strings.Contains(msg, "ZeroDivision") {
		t.Fatalf("Error() = %q, want it to mention ZeroDivision", msg)
	}
	if !strings.Contains(msg, "position 5") {
		t.Fatalf("Error() = %q, want it to mention position 5", msg)
	}
}

func TestFormatWithSourceDrawsCaret(t *testing.T) {
	err := New(Syntax, loc.Span{Pos: 2, Len: 1}, "bad token").WithSource("1 @ 2")
	out := err.Format(false)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("Format output should have 3 lines, got %d: %q", len(lines), out)
	}
	if lines[1] != "  1 @ 2" {
		t.Fatalf("source line = %q, want \"  1 @ 2\"", lines[1])
	}
	if !strings.Contains(lines[2], "^") {
		t.Fatalf("caret line should contain '^', got %q", lines[2])
	}
}

func TestKindStringUnknown(t *testing.T) {
	if Kind(999).String() != "Unknown" {
		t.Fatalf("Kind(999).String() = %q, want Unknown", Kind(999).String())
	}
}
