package eval

import (
	"testing"

	"github.com/jharlow/unitcalc/internal/groupify"
	"github.com/jharlow/unitcalc/internal/lexer"
	"github.com/jharlow/unitcalc/internal/normalize"
	"github.com/jharlow/unitcalc/internal/quantity"
	"github.com/jharlow/unitcalc/internal/token"
	"github.com/jharlow/unitcalc/internal/treeify"
)

func evalText(t *testing.T, text string, ctx *token.Context) quantity.Quantity {
	t.Helper()
	if ctx == nil {
		ctx = token.NewContext()
	}
	toks, err := lexer.Tokenize(text, ctx)
	if err != nil {
		t.Fatalf("Tokenize(%q) error: %v", text, err)
	}
	g, err := groupify.Groupify(toks, ctx, text)
	if err != nil {
		t.Fatalf("Groupify(%q) error: %v", text, err)
	}
	tree, err := treeify.Treeify(g, text)
	if err != nil {
		t.Fatalf("Treeify(%q) error: %v", text, err)
	}
	n := normalize.Normalize(tree)
	q, err := Evaluate(n, ctx, text)
	if err != nil {
		t.Fatalf("Evaluate(%q) error: %v", text, err)
	}
	return q
}

func evalErr(t *testing.T, text string) error {
	t.Helper()
	ctx := token.NewContext()
	toks, err := lexer.Tokenize(text, ctx)
	if err != nil {
		return err
	}
	g, err := groupify.Groupify(toks, ctx, text)
	if err != nil {
		return err
	}
	tree, err := treeify.Treeify(g, text)
	if err != nil {
		return err
	}
	n := normalize.Normalize(tree)
	_, err = Evaluate(n, ctx, text)
	return err
}

func TestEvalArithmetic(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"2 + 3", "5"},
		{"10 - 3 - 2", "5"},
		{"2 * 3 + 4", "10"},
		{"2 + 3 * 4", "14"},
		{"2^3^4", "4096"}, // left-associative: (2^3)^4 = 8^4
		{"3!", "6"},
		{"10 mod 3", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			q := evalText(t, tt.expr, nil)
			if q.Scalar.String() != tt.want {
				t.Fatalf("%s = %s, want %s", tt.expr, q.Scalar, tt.want)
			}
		})
	}
}

func TestEvalDefineAndReference(t *testing.T) {
	ctx := token.NewContext()
	evalText(t, "x := 5", ctx)
	q := evalText(t, "x + 1", ctx)
	if q.Scalar.String() != "6" {
		t.Fatalf("x+1 = %s, want 6", q.Scalar)
	}
}

func TestEvalUnitConvert(t *testing.T) {
	// 3048mm = 3048 * (1/1000) m exactly = 3.048, rendered to 5 sig figs.
	q := evalText(t, "3048 mm to m", nil)
	if q.Scalar.String() != "3.048" {
		t.Fatalf("3048mm to m = %s, want 3.048", q.Scalar)
	}
}

func TestEvalZeroDivisionFails(t *testing.T) {
	if err := evalErr(t, "1 / 0"); err == nil {
		t.Fatal("expected a ZeroDivision error for 1/0")
	}
}

func TestEvalIncompatibleUnitAddFails(t *testing.T) {
	if err := evalErr(t, "3 m + 2 s"); err == nil {
		t.Fatal("expected an IncompatibleUnit error for m+s")
	}
}

func TestEvalFactorialNonIntegerFails(t *testing.T) {
	if err := evalErr(t, "2.5!"); err == nil {
		t.Fatal("expected a BadMath error for a non-integer factorial operand")
	}
}

func TestEvalModuloNonIntegerFails(t *testing.T) {
	if err := evalErr(t, "2.5 mod 2"); err == nil {
		t.Fatal("expected a BadMath error for a non-integer modulo operand")
	}
}

func TestEvalFunctionSin(t *testing.T) {
	q := evalText(t, "sin 0", nil)
	if q.Scalar.String() != "0" {
		t.Fatalf("sin(0) = %s, want 0", q.Scalar)
	}
}

func TestEvalCscIsReciprocalOfSin(t *testing.T) {
	if err := evalErr(t, "csc 0"); err == nil {
		t.Fatal("csc(0) divides by zero and should fail")
	}
}
