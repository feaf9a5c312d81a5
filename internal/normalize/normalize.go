// Package normalize implements Normalize (spec §4.5): a single post-order
// pass over a Treeify tree that lowers every surface-only operator to its
// canonical form and folds literal negation into numeric literals, so that
// Evaluate only ever sees {Quantity, Variable, Constant, Operator} with
// operator drawn from the closed canonical set of spec §3. The lowering
// table is grounded on original_source/src/tokens.rs's Operator::lower
// match arms (Subtract → Add+Negative, Divide → Multiply+Flip, Sqrt →
// Power(_, 1/2)), carried over file-by-file since CWBudde-go-dws has no
// direct analogue for a canonicalizing tree pass.
package normalize

import (
	"math/big"

	"github.com/jharlow/unitcalc/internal/loc"
	"github.com/jharlow/unitcalc/internal/quantity"
	"github.com/jharlow/unitcalc/internal/scalar"
	"github.com/jharlow/unitcalc/internal/token"
	"github.com/jharlow/unitcalc/internal/unit"
)

var half = scalar.Rational{Rat: big.NewRat(1, 2)}

// Normalize lowers t into canonical form. PreGroups should already have
// been resolved by Treeify; Normalize recurses into operator children only.
func Normalize(t token.Token) token.Token {
	switch n := t.(type) {
	case token.PreNumber:
		return literalQuantity(n)

	case token.OperatorNode:
		children := make([]token.Token, len(n.Children))
		for i, c := range n.Children {
			children[i] = Normalize(c)
		}
		return lower(n.Op, n.Name, n.SpanV, children)

	default:
		// Quantity, Variable, Constant: already canonical leaves.
		return t
	}
}

// literalQuantity parses a PreNumber's digit run into an exact rational
// Quantity. Tokenize already rejected malformed digit runs (two decimal
// points, a lone "."), so the parse here cannot fail.
func literalQuantity(n token.PreNumber) token.Quantity {
	s, ok := scalar.NewRationalFromString(n.Digits)
	if !ok {
		s, _ = scalar.NewFloatFromString(n.Digits)
	}
	return token.Quantity{SpanV: n.SpanV, Value: quantity.New(s, unit.Unitless())}
}

// lower rewrites a single operator node, given its already-normalized
// children, into canonical form.
func lower(op token.Operator, name string, span loc.Span, children []token.Token) token.Token {
	switch op {
	case token.Subtract:
		neg := foldNegative(span, children[1])
		return flattenAdd(span, []token.Token{children[0], neg})

	case token.Divide:
		flip := token.OperatorNode{SpanV: span, Op: token.Flip, Children: []token.Token{children[1]}}
		return flattenMultiply(span, []token.Token{children[0], flip})

	case token.Sqrt:
		exp := token.Quantity{SpanV: span, Value: quantity.New(half, unit.Unitless())}
		return token.OperatorNode{SpanV: span, Op: token.Power, Children: []token.Token{children[0], exp}}

	case token.ImplicitMultiply:
		return flattenMultiply(span, children)

	case token.ModuloLong:
		return token.OperatorNode{SpanV: span, Op: token.Modulo, Children: children}

	case token.Negative:
		return foldNegative(span, children[0])

	case token.Add:
		return flattenAdd(span, children)

	case token.Multiply:
		return flattenMultiply(span, children)

	default:
		// UnitConvert, Modulo, Power, Factorial, Function, Flip, Define are
		// already canonical: carry the (already-normalized) children over.
		return token.OperatorNode{SpanV: span, Op: op, Name: name, Children: children}
	}
}

// foldNegative negates child directly when it is already a literal
// Quantity, rather than leaving a Negative node wrapping a leaf (spec §4.5:
// "folds literal-negation into numeric literals"). Anything else (a
// Variable, Constant, or an unresolved Operator subtree) keeps the Negative
// node for Evaluate to resolve once the operand has a value.
func foldNegative(span loc.Span, child token.Token) token.Token {
	if q, ok := child.(token.Quantity); ok {
		return token.Quantity{SpanV: span, Value: q.Value.Neg()}
	}
	return token.OperatorNode{SpanV: span, Op: token.Negative, Children: []token.Token{child}}
}

// flattenAdd merges any child that is itself a canonical Add node into this
// node's child list: Add is associative, so a tree built from repeated
// binary combination (e.g. Add(Add(a,b),c) from "a+b+c") is equivalent to a
// single variadic Add([a,b,c]), which is how Evaluate folds it (spec §4.6).
func flattenAdd(span loc.Span, children []token.Token) token.Token {
	return flatten(token.Add, span, children)
}

// flattenMultiply is flattenAdd's counterpart for Multiply.
func flattenMultiply(span loc.Span, children []token.Token) token.Token {
	return flatten(token.Multiply, span, children)
}

func flatten(op token.Operator, span loc.Span, children []token.Token) token.Token {
	out := make([]token.Token, 0, len(children))
	for _, c := range children {
		if node, ok := c.(token.OperatorNode); ok && node.Op == op {
			out = append(out, node.Children...)
			continue
		}
		out = append(out, c)
	}
	return token.OperatorNode{SpanV: span, Op: op, Children: out}
}
