// Package treeify implements Treeify (spec §4.4): an operator-precedence
// shunt that lowers a PreGroup's linear token sequence into a single
// operator tree. It is three mutually-dispatched routines selected by the
// fixity of the operator at the scan cursor, walking the reference's
// precedence table left to right and combining a tied pair (same
// precedence level) as soon as it's found, which is what makes chains of
// equal-precedence operators fold left-associatively: "a - b - c" builds
// (a - b) - c and "2^3^4^5" builds ((2^3)^4)^5 (spec §8). A prefix-unary
// operator sitting directly to the right of another operator (e.g. the
// second "-" in "- -5") defers instead of erroring, letting the inner one
// resolve first.
package treeify

import (
	"github.com/jharlow/unitcalc/internal/errors"
	"github.com/jharlow/unitcalc/internal/loc"
	"github.com/jharlow/unitcalc/internal/token"
)

// Treeify reduces group.Seq to a single token tree. Nested PreGroups are
// recursed into lazily: only when extracted as an operand.
func Treeify(group token.PreGroup, source string) (token.Token, error) {
	seq := append([]token.Token(nil), group.Seq...)

	if len(seq) == 0 {
		return nil, errors.New(errors.Syntax, group.SpanV, "empty group").WithSource(source)
	}

	i := 0
	stuck := 0
	prevLen := len(seq)
	for len(seq) > 1 {
		if len(seq) != prevLen {
			prevLen = len(seq)
			stuck = 0
		}
		op, ok := seq[i].(token.PreOperator)
		if !ok {
			// seq[i] is already a resolved value (or one combine away from
			// being the sole survivor): advance and let a later index find
			// the next operator to combine, exactly as the reference scan
			// does rather than demanding the cursor always sit on one.
			i++
			if i >= len(seq) {
				i = len(seq) - 1
			}
			// A full sweep with no combine means seq holds two or more
			// operands with no operator anywhere between them to combine
			// them with (e.g. "5 2"): nothing further will ever reduce
			// len(seq), so report it instead of spinning forever.
			stuck++
			if stuck > len(seq) {
				return nil, errors.New(errors.Syntax, seq[i].Span(),
					"expected an operator between two operands").WithSource(source)
			}
			continue
		}

		var next int
		var err error
		switch token.FixityOf(op.Op) {
		case token.Binary:
			next, err = stepBinary(&seq, i, op, source)
		case token.PrefixUnary:
			next, err = stepPrefix(&seq, i, op, source)
		case token.PostfixUnary:
			next, err = stepPostfix(&seq, i, op, source)
		}
		if err != nil {
			return nil, err
		}
		i = next
		if i < 0 {
			i = 0
		}
		if i >= len(seq) {
			i = len(seq) - 1
		}
	}

	root := seq[0]
	if _, ok := root.(token.PreOperator); ok {
		return nil, errors.New(errors.Syntax, root.Span(),
			"group resolves to a single operator with no operands").WithSource(source)
	}
	return expand(root, source)
}

// expand recursively treeifies a PreGroup operand; any other token is
// already a value (or will be rejected as an operator-in-operand-position
// error by the caller before reaching here).
func expand(t token.Token, source string) (token.Token, error) {
	if g, ok := t.(token.PreGroup); ok {
		return Treeify(g, source)
	}
	return t, nil
}

func precedenceAt(seq []token.Token, idx int) (int, bool) {
	if idx < 0 || idx >= len(seq) {
		return 0, false
	}
	op, ok := seq[idx].(token.PreOperator)
	if !ok {
		return 0, false
	}
	return token.Precedence(op.Op), true
}

func operandAt(seq []token.Token, idx int, source string, side string) (token.Token, error) {
	if idx < 0 || idx >= len(seq) {
		return nil, errors.New(errors.Syntax, loc.At(0),
			"operator has no %s operand", side).WithSource(source)
	}
	if op, ok := seq[idx].(token.PreOperator); ok {
		return nil, errors.New(errors.Syntax, op.SpanV,
			"expected an operand, found operator %q", op.Op).WithSource(source)
	}
	return expand(seq[idx], source)
}

// deferToPrefix reports whether the token immediately to the right of a
// binary or prefix operator at i is itself a prefix-unary operator — e.g.
// the "-5" in "3 + -5", or the second "-" in "- -5" — which must be
// resolved before the current operator has anything to grab. Any other
// operator sitting directly to the right with no operand between (e.g.
// "3+*2") is a syntax error; the current operator cannot defer to it.
func deferToPrefix(s []token.Token, i int, self token.PreOperator, source string) (target int, defer_ bool, err error) {
	if i+1 >= len(s) {
		return 0, false, nil
	}
	next, ok := s[i+1].(token.PreOperator)
	if !ok {
		return 0, false, nil
	}
	if token.FixityOf(next.Op) == token.PrefixUnary {
		return i + 1, true, nil
	}
	return 0, false, errors.New(errors.Syntax, next.SpanV,
		"operator %q cannot directly follow operator %q", next.Op, self.Op).WithSource(source)
}

func stepBinary(seq *[]token.Token, i int, op token.PreOperator, source string) (int, error) {
	s := *seq
	if target, defer_, err := deferToPrefix(s, i, op, source); err != nil {
		return 0, err
	} else if defer_ {
		return target, nil
	}

	left, err := operandAt(s, i-1, source, "left")
	if err != nil {
		return 0, err
	}
	rightP, hasRight := precedenceAt(s, i+2)
	selfP := token.Precedence(op.Op)

	// >= (not >) ties equal-precedence operators to the left: each pair
	// combines as soon as it's found rather than waiting on its neighbor,
	// so "a - b - c" folds to (a - b) - c and "2^3^4^5" folds to
	// ((2^3)^4)^5 (spec §8).
	if !hasRight || selfP >= rightP {
		right, err := operandAt(s, i+1, source, "right")
		if err != nil {
			return 0, err
		}
		span := loc.Cover(left.Span(), right.Span())
		node := token.OperatorNode{SpanV: span, Op: op.Op, Children: []token.Token{left, right}}
		*seq = replace(s, i-1, i+1, node)
		return i - 2, nil
	}
	return i + 2, nil
}

func stepPrefix(seq *[]token.Token, i int, op token.PreOperator, source string) (int, error) {
	s := *seq
	if target, defer_, err := deferToPrefix(s, i, op, source); err != nil {
		return 0, err
	} else if defer_ {
		return target, nil
	}

	rightP, hasRight := precedenceAt(s, i+2)
	selfP := token.Precedence(op.Op)

	if !hasRight || selfP >= rightP {
		right, err := operandAt(s, i+1, source, "right")
		if err != nil {
			return 0, err
		}
		span := loc.Cover(op.SpanV, right.Span())
		node := token.OperatorNode{SpanV: span, Op: op.Op, Name: op.Name, Children: []token.Token{right}}
		*seq = replace(s, i, i+1, node)
		return i - 1, nil
	}
	return i + 2, nil
}

func stepPostfix(seq *[]token.Token, i int, op token.PreOperator, source string) (int, error) {
	s := *seq
	compareP, hasCompare := precedenceAt(s, i-2)
	selfP := token.Precedence(op.Op)

	if !hasCompare || selfP >= compareP {
		left, err := operandAt(s, i-1, source, "left")
		if err != nil {
			return 0, err
		}
		span := loc.Cover(left.Span(), op.SpanV)
		node := token.OperatorNode{SpanV: span, Op: op.Op, Children: []token.Token{left}}
		*seq = replace(s, i-1, i, node)
		return i - 2, nil
	}
	return i + 1, nil
}

// replace splices seq[from:to+1] down to a single node.
func replace(seq []token.Token, from, to int, node token.Token) []token.Token {
	out := make([]token.Token, 0, len(seq)-(to-from))
	out = append(out, seq[:from]...)
	out = append(out, node)
	out = append(out, seq[to+1:]...)
	return out
}
