package calc

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestEngineScenarios drives the full Engine facade (Parse/Eval/EvalString)
// over a table of representative expressions and snapshots the rendered
// output, in the style of CWBudde-go-dws's fixture-based interpreter tests.
func TestEngineScenarios(t *testing.T) {
	scenarios := []struct {
		name string
		expr string
	}{
		{"AddIntegers", "2 + 3"},
		{"SubtractChainLeftAssoc", "10 - 3 - 2"},
		{"PowerChainLeftAssoc", "2^3^4"},
		{"PrecedenceMulOverAdd", "2 + 3 * 4"},
		{"Factorial", "5!"},
		{"RationalDivision", "1 / 3"},
		{"UnitAddition", "3 m + 2 m"},
		{"UnitConversion", "3048 mm to m"},
		{"UnitMultiplication", "2 m * 3 s"},
		{"FunctionSin", "sin 0"},
		{"NestedGrouping", "(2 + 3) * (4 - 1)"},
		{"ImplicitMultiply", "2(3)"},
		{"DoubleNegative", "- -5"},
		{"Modulo", "10 mod 3"},
	}

	engine := New()
	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			out, err := engine.EvalString(sc.expr)
			if err != nil {
				t.Fatalf("EvalString(%q) error: %v", sc.expr, err)
			}
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_output", sc.name), out)
		})
	}
}

// TestEngineVariablePersistsAcrossCalls exercises the Engine's Context
// retention across separate Eval calls, the behavior a REPL caller relies on.
func TestEngineVariablePersistsAcrossCalls(t *testing.T) {
	engine := New()
	if _, err := engine.Eval("x := 10"); err != nil {
		t.Fatalf("defining x failed: %v", err)
	}
	out, err := engine.EvalString("x * 2")
	if err != nil {
		t.Fatalf("referencing x failed: %v", err)
	}
	if out != "20" {
		t.Fatalf("x*2 = %s, want 20", out)
	}
}

// TestEngineResetClearsVariables confirms Reset starts a fresh Context, so a
// variable defined before Reset is no longer visible afterward.
func TestEngineResetClearsVariables(t *testing.T) {
	engine := New()
	if _, err := engine.Eval("y := 7"); err != nil {
		t.Fatalf("defining y failed: %v", err)
	}
	engine.Reset()
	if _, err := engine.Eval("y + 1"); err == nil {
		t.Fatal("expected an Undefined error for y after Reset")
	}
}

func TestEngineEvalErrors(t *testing.T) {
	errorCases := []struct {
		name string
		expr string
	}{
		{"DivideByZero", "1 / 0"},
		{"IncompatibleUnits", "3 m + 2 s"},
		{"UndefinedVariable", "z + 1"},
	}
	engine := New()
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := engine.Eval(tc.expr); err == nil {
				t.Fatalf("expected an error evaluating %q", tc.expr)
			}
		})
	}
}

func TestEngineSubstitute(t *testing.T) {
	engine := New()
	got := engine.Substitute("sqrt 9")
	if got != "√ 9" {
		t.Fatalf("Substitute(sqrt 9) = %q, want \"√ 9\"", got)
	}
}

func TestEngineParseReturnsNormalizedTree(t *testing.T) {
	engine := New()
	tree, err := engine.Parse("6 / 2")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if tree == nil {
		t.Fatal("Parse returned a nil tree")
	}
}

// goodExpr asserts text evaluates to exactly want, in the style of
// original_source/src/tests.rs's good_expr helper.
func goodExpr(t *testing.T, want, text string) {
	t.Helper()
	out, err := New().EvalString(text)
	if err != nil {
		t.Fatalf("EvalString(%q) error: %v", text, err)
	}
	if out != want {
		t.Fatalf("EvalString(%q) = %q, want %q", text, out, want)
	}
}

// badExpr asserts text fails to evaluate, in the style of
// original_source/src/tests.rs's bad_expr helper.
func badExpr(t *testing.T, text string) {
	t.Helper()
	if _, err := New().EvalString(text); err == nil {
		t.Fatalf("EvalString(%q) should fail, got a result", text)
	}
}

// TestSpecScenarios pins the seven end-to-end scenarios directly against
// the exact rendered-output strings, rather than snapshotting whatever the
// code happens to emit: a regression in scalar formatting or rt's operator
// shape must fail this test, not pass silently through a recorded snapshot.
func TestSpecScenarios(t *testing.T) {
	t.Run("big number renders in scientific notation", func(t *testing.T) {
		goodExpr(t, "1.2346e15", "1234567890000000")
	})

	t.Run("division binds looser than implicit multiply", func(t *testing.T) {
		goodExpr(t, "0.15915", "1/2pi") // 1 / (2*pi)
	})

	t.Run("division and multiply tie left-associatively", func(t *testing.T) {
		goodExpr(t, "1.5708", "1/2*pi") // (1/2)*pi
	})

	t.Run("power chain is left-associative", func(t *testing.T) {
		goodExpr(t, "1.1529e18", "2^3^4^5") // ((2^3)^4)^5
	})

	t.Run("factorial binds tighter than add and implicit multiply", func(t *testing.T) {
		goodExpr(t, "7", "3!+1")
		goodExpr(t, "18", "3!3")
	})

	t.Run("rt is an alias of the prefix sqrt operator", func(t *testing.T) {
		goodExpr(t, "2", "rt 4")
		goodExpr(t, "6", "2 rt 9") // 2 * sqrt(9), via implicit multiply
	})

	t.Run("malformed input fails", func(t *testing.T) {
		for _, text := range []string{"2^", "^2", "()", "3+2)", "5 2", "3.1!", "pi!"} {
			badExpr(t, text)
		}
	})
}
