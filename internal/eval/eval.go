// Package eval implements Evaluate (spec §4.6): a bottom-up, left-to-right,
// depth-first post-order reduction of a Normalize-d tree into a single
// Quantity. The per-operator semantics (unit/integer/range preconditions
// and which error Kind each violation raises) are ported directly from
// original_source/src/evaluate/operator.rs's eval_operator and
// src/evaluate/function.rs's eval_function match arms; the recursive
// tree-walk shape (rather than the reference's explicit coordinate-stack
// zipper) follows CWBudde-go-dws/internal/interpreter's plain AST-walking
// evaluator, which is the idiomatic Go shape for the same job.
package eval

import (
	"math/big"

	"github.com/jharlow/unitcalc/internal/errors"
	"github.com/jharlow/unitcalc/internal/loc"
	"github.com/jharlow/unitcalc/internal/quantity"
	"github.com/jharlow/unitcalc/internal/scalar"
	"github.com/jharlow/unitcalc/internal/token"
)

// factorialCap is the largest operand Factorial accepts (spec §4.6, §5).
const factorialCap = 50000

var one = scalar.Rational{Rat: big.NewRat(1, 1)}

// Evaluate reduces a normalized token tree to a Quantity, threading ctx so
// Define can bind names and later references can resolve them.
func Evaluate(t token.Token, ctx *token.Context, source string) (quantity.Quantity, error) {
	switch n := t.(type) {
	case token.Quantity:
		return n.Value, nil

	case token.Constant:
		return n.Value, nil

	case token.Variable:
		bound, ok := ctx.Lookup(n.Name)
		if !ok {
			return quantity.Quantity{}, errors.New(errors.Undefined, n.SpanV,
				"undefined name %q", n.Name).WithSource(source)
		}
		q, ok := bound.(token.Quantity)
		if !ok {
			return quantity.Quantity{}, errors.New(errors.Undefined, n.SpanV,
				"%q is bound to an unresolved value", n.Name).WithSource(source)
		}
		return q.Value, nil

	case token.OperatorNode:
		return evalOperator(n, ctx, source)

	default:
		return quantity.Quantity{}, errors.New(errors.Syntax, t.Span(),
			"cannot evaluate a surface token directly").WithSource(source)
	}
}

func evalOperator(n token.OperatorNode, ctx *token.Context, source string) (quantity.Quantity, error) {
	// Define's left child is a binding target, not a value: it must not be
	// resolved through the generic Variable-lookup path above.
	if n.Op == token.Define {
		return evalDefine(n, ctx, source)
	}

	args := make([]quantity.Quantity, len(n.Children))
	for i, c := range n.Children {
		v, err := Evaluate(c, ctx, source)
		if err != nil {
			return quantity.Quantity{}, err
		}
		args[i] = v
	}

	switch n.Op {
	case token.Negative:
		return args[0].Neg(), nil

	case token.Flip:
		if args[0].Scalar.IsZero() {
			return quantity.Quantity{}, errors.New(errors.ZeroDivision, n.SpanV,
				"division by zero").WithSource(source)
		}
		return quantity.New(one, nil).Div(args[0]), nil

	case token.Add:
		return evalAdd(n.SpanV, args, source)

	case token.Multiply:
		return evalMultiply(args), nil

	case token.Modulo:
		return evalModulo(n.SpanV, args[0], args[1], source)

	case token.Power:
		return evalPower(n.SpanV, args[0], args[1], source)

	case token.UnitConvert:
		return evalUnitConvert(n.SpanV, args[0], args[1], source)

	case token.Factorial:
		return evalFactorial(n.SpanV, args[0], source)

	case token.Function:
		return evalFunction(n.SpanV, n.Name, args[0], source)

	default:
		return quantity.Quantity{}, errors.New(errors.Syntax, n.SpanV,
			"operator %q survived normalization uncanonicalized", n.Op).WithSource(source)
	}
}

func evalDefine(n token.OperatorNode, ctx *token.Context, source string) (quantity.Quantity, error) {
	v, ok := n.Children[0].(token.Variable)
	if !ok {
		return quantity.Quantity{}, errors.New(errors.BadDefineName, n.Children[0].Span(),
			"left side of ':=' must be a bare variable name").WithSource(source)
	}
	value, err := Evaluate(n.Children[1], ctx, source)
	if err != nil {
		return quantity.Quantity{}, err
	}
	ctx.Bind(v.Name, token.Quantity{SpanV: n.SpanV, Value: value})
	return value, nil
}

// evalAdd folds left to right, converting each operand into the running
// sum's unit; a dimension mismatch is IncompatibleUnit (spec §4.6, §4.8).
func evalAdd(span loc.Span, args []quantity.Quantity, source string) (quantity.Quantity, error) {
	sum := args[0]
	for _, v := range args[1:] {
		if !sum.Compatible(v) {
			return quantity.Quantity{}, errors.New(errors.IncompatibleUnit, span,
				"cannot add incompatible units").WithSource(source)
		}
		sum = sum.Add(v)
	}
	return sum, nil
}

// evalMultiply folds as a product starting from the rational one. Every
// Quantity in this implementation already carries its scalar pre-converted
// to base SI units (a named unit's coefficient is baked in at the moment it
// is parsed, per units.table.go), so unit exponents always combine directly
// with no additional bridging step: the "common factor" search of spec
// §4.8 has no work left to do in this representation (see DESIGN.md).
func evalMultiply(args []quantity.Quantity) quantity.Quantity {
	prod := quantity.New(one, nil)
	for _, v := range args {
		prod = prod.Mul(v)
	}
	return prod
}

func evalModulo(span loc.Span, a, b quantity.Quantity, source string) (quantity.Quantity, error) {
	if !a.Unitless() || !b.Unitless() {
		return quantity.Quantity{}, errors.New(errors.IncompatibleUnit, span,
			"mod operands must be unitless").WithSource(source)
	}
	if b.Scalar.Cmp(one) <= 0 {
		return quantity.Quantity{}, errors.New(errors.BadMath, span,
			"mod divisor must be greater than 1").WithSource(source)
	}
	if !a.Scalar.Fract().IsZero() || !b.Scalar.Fract().IsZero() {
		return quantity.Quantity{}, errors.New(errors.BadMath, span,
			"mod operands must be integers").WithSource(source)
	}
	return quantity.Quantity{Scalar: a.Scalar.Mod(b.Scalar), Unit: a.Unit}, nil
}

func evalPower(span loc.Span, base, exp quantity.Quantity, source string) (quantity.Quantity, error) {
	if !exp.Unitless() {
		return quantity.Quantity{}, errors.New(errors.IncompatibleUnit, span,
			"exponent must be unitless").WithSource(source)
	}
	if base.Scalar.IsZero() && exp.Scalar.IsNegative() {
		return quantity.Quantity{}, errors.New(errors.ZeroDivision, span,
			"zero cannot be raised to a negative power").WithSource(source)
	}
	result := base.Pow(exp.Scalar, scalar.ToRat(exp.Scalar))
	if result.Scalar.IsNaN() {
		return quantity.Quantity{}, errors.New(errors.BadMath, span,
			"power produced an undefined result").WithSource(source)
	}
	return result, nil
}

func evalUnitConvert(span loc.Span, a, b quantity.Quantity, source string) (quantity.Quantity, error) {
	if !a.Compatible(b) {
		return quantity.Quantity{}, errors.New(errors.IncompatibleUnit, span,
			"cannot convert between incompatible units").WithSource(source)
	}
	if b.Scalar.IsZero() {
		return quantity.Quantity{}, errors.New(errors.ZeroDivision, span,
			"cannot convert to a zero-valued unit").WithSource(source)
	}
	return quantity.ConvertToFactor(a, one, b.Scalar, a.Unit), nil
}

func evalFactorial(span loc.Span, v quantity.Quantity, source string) (quantity.Quantity, error) {
	if !v.Unitless() {
		return quantity.Quantity{}, errors.New(errors.IncompatibleUnit, span,
			"factorial operand must be unitless").WithSource(source)
	}
	if !v.Scalar.Fract().IsZero() {
		return quantity.Quantity{}, errors.New(errors.BadMath, span,
			"factorial operand must be an integer").WithSource(source)
	}
	n := scalar.ToRat(v.Scalar)
	if !n.IsInt() || v.Scalar.IsNegative() {
		return quantity.Quantity{}, errors.New(errors.BadMath, span,
			"factorial operand must be a non-negative integer").WithSource(source)
	}
	if n.Num().CmpAbs(big.NewInt(factorialCap)) > 0 {
		return quantity.Quantity{}, errors.New(errors.TooBig, span,
			"factorial operand exceeds %d", factorialCap).WithSource(source)
	}

	limit := n.Num().Int64()
	acc := big.NewInt(1)
	for i := int64(2); i <= limit; i++ {
		acc.Mul(acc, big.NewInt(i))
	}
	return quantity.New(scalar.Rational{Rat: new(big.Rat).SetInt(acc)}, nil), nil
}

func evalFunction(span loc.Span, name string, v quantity.Quantity, source string) (quantity.Quantity, error) {
	if !v.Unitless() {
		return quantity.Quantity{}, errors.New(errors.IncompatibleUnit, span,
			"%s argument must be unitless", name).WithSource(source)
	}
	s := v.Scalar

	// csc/sec/cot and their hyperbolics lower to Flip(sin/cos/tan(x))
	// (original_source/src/evaluate/function.rs).
	switch name {
	case "csc":
		return flipOf(s.Sin(), span, source)
	case "sec":
		return flipOf(s.Cos(), span, source)
	case "cot":
		return flipOf(s.Tan(), span, source)
	case "csch":
		return flipOf(s.Sinh(), span, source)
	case "sech":
		return flipOf(s.Cosh(), span, source)
	case "coth":
		return flipOf(s.Tanh(), span, source)
	}

	var r scalar.Scalar
	switch name {
	case "sin":
		r = s.Sin()
	case "cos":
		r = s.Cos()
	case "tan":
		r = s.Tan()
	case "asin":
		r = s.Asin()
	case "acos":
		r = s.Acos()
	case "atan":
		r = s.Atan()
	case "sinh":
		r = s.Sinh()
	case "cosh":
		r = s.Cosh()
	case "tanh":
		r = s.Tanh()
	case "asinh":
		r = s.Asinh()
	case "acosh":
		r = s.Acosh()
	case "atanh":
		r = s.Atanh()
	case "ln":
		r = s.Ln()
	case "log":
		r = s.Log10()
	case "log2":
		r = s.Log2()
	case "exp":
		r = s.Exp()
	case "abs":
		r = s.Abs()
	case "fract":
		r = s.Fract()
	case "floor":
		r = s.Floor()
	case "ceil":
		r = s.Ceil()
	case "round":
		r = s.Round()
	default:
		return quantity.Quantity{}, errors.New(errors.Syntax, span,
			"unknown function %q", name).WithSource(source)
	}
	if r.IsNaN() {
		return quantity.Quantity{}, errors.New(errors.BadMath, span,
			"%s produced an undefined result", name).WithSource(source)
	}
	return quantity.New(r, nil), nil
}

func flipOf(s scalar.Scalar, span loc.Span, source string) (quantity.Quantity, error) {
	if s.IsZero() {
		return quantity.Quantity{}, errors.New(errors.ZeroDivision, span,
			"division by zero").WithSource(source)
	}
	return quantity.New(one.Div(s), nil), nil
}
