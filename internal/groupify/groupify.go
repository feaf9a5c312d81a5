// Package groupify implements Groupify (spec §4.3): bracket-matching a flat
// pre-token sequence into a single recursive PreGroup tree, inserting
// implicit-multiplication operators at value-like/value-like junctions, and
// resolving any pre-token words Tokenize left unresolved. The linear scan
// with a stack of open brackets is modeled on
// CWBudde-go-dws/internal/parser/cursor.go's cursor-based token walk.
package groupify

import (
	"github.com/jharlow/unitcalc/internal/errors"
	"github.com/jharlow/unitcalc/internal/loc"
	"github.com/jharlow/unitcalc/internal/token"
	"github.com/jharlow/unitcalc/internal/units"
)

// Groupify consumes the flat pre-token sequence produced by Tokenize and
// returns the root PreGroup.
func Groupify(tokens []token.Token, ctx *token.Context, source string) (token.PreGroup, error) {
	resolved, err := resolveWords(tokens, ctx, source)
	if err != nil {
		return token.PreGroup{}, err
	}

	root, next, err := groupSeq(resolved, 0, source)
	if err != nil {
		return token.PreGroup{}, err
	}
	if next < len(resolved) {
		// A PreGroupEnd with no matching open bracket.
		return token.PreGroup{}, errors.New(errors.Syntax, resolved[next].Span(),
			"unmatched closing bracket").WithSource(source)
	}

	withImplicit := insertImplicitMultiply(root)
	span := loc.Span{}
	if len(tokens) > 0 {
		span = loc.Cover(tokens[0].Span(), tokens[len(tokens)-1].Span())
	}
	return token.PreGroup{SpanV: span, Seq: withImplicit}, nil
}

// groupSeq consumes tokens[start:] left to right, recursing into a nested
// PreGroup whenever it sees a PreGroupStart, and returns the built sequence
// plus the index just past what it consumed. It stops (without consuming)
// at a PreGroupEnd, leaving that index for the caller: the top-level caller
// checks that index reached len(tokens) (no stray close bracket), and a
// recursive call consumes the PreGroupEnd itself as its closing bracket.
func groupSeq(tokens []token.Token, start int, source string) (seq []token.Token, next int, err error) {
	i := start
	for i < len(tokens) {
		switch t := tokens[i].(type) {
		case token.PreGroupStart:
			inner, after, ierr := groupSeq(tokens, i+1, source)
			if ierr != nil {
				return nil, 0, ierr
			}
			if after >= len(tokens) {
				return nil, 0, errors.New(errors.Syntax, t.SpanV, "unclosed bracket").WithSource(source)
			}
			end := tokens[after].(token.PreGroupEnd)
			span := loc.Cover(t.SpanV, end.SpanV)
			seq = append(seq, token.PreGroup{SpanV: span, Seq: inner})
			i = after + 1
			continue

		case token.PreGroupEnd:
			return seq, i, nil

		default:
			seq = append(seq, t)
			i++
		}
	}
	return seq, i, nil
}

// resolveWords resolves any remaining PreWord left by Tokenize against ctx
// and the static registry, failing Undefined for anything left over. A word
// immediately followed by ":=" resolves to a Variable regardless of prior
// binding: it is the target of a new definition, which Evaluate's Define
// arm is responsible for creating.
func resolveWords(tokens []token.Token, ctx *token.Context, source string) ([]token.Token, error) {
	out := make([]token.Token, len(tokens))
	for i, t := range tokens {
		w, ok := t.(token.PreWord)
		if !ok {
			out[i] = t
			continue
		}
		if c, ok := units.Default().LookupConstant(w.Text); ok {
			out[i] = token.Constant{SpanV: w.SpanV, Name: w.Text, Value: c}
			continue
		}
		if ctx != nil {
			if _, ok := ctx.Lookup(w.Text); ok {
				out[i] = token.Variable{SpanV: w.SpanV, Name: w.Text}
				continue
			}
		}
		if isDefineTarget(tokens, i) {
			out[i] = token.Variable{SpanV: w.SpanV, Name: w.Text}
			continue
		}
		return nil, errors.New(errors.Undefined, w.SpanV, "undefined name %q", w.Text).WithSource(source)
	}
	return out, nil
}

// isDefineTarget reports whether tokens[i] is immediately followed by a
// ":=" operator, i.e. it is the left-hand side of a new definition.
func isDefineTarget(tokens []token.Token, i int) bool {
	if i+1 >= len(tokens) {
		return false
	}
	op, ok := tokens[i+1].(token.PreOperator)
	return ok && op.Op == token.Define
}

// isValueLike reports whether t can terminate/start an implicit-multiply
// junction: a group, number literal, constant, variable, or (already
// resolved) unit.
func isValueLike(t token.Token) bool {
	switch t.(type) {
	case token.PreGroup, token.PreNumber, token.Constant, token.Variable, token.Quantity:
		return true
	default:
		return false
	}
}

// isPrefixStarter reports whether t begins a prefix-unary expression that
// should be split from a preceding value by an implicit multiply (e.g.
// "2 sqrt 4" or "2 sin 0").
func isPrefixStarter(t token.Token) bool {
	op, ok := t.(token.PreOperator)
	if !ok {
		return false
	}
	return op.Op == token.Negative || op.Op == token.Sqrt || op.Op == token.Function
}

// insertImplicitMultiply walks seq (recursing into nested PreGroups),
// inserting a zero-length PreOperator(ImplicitMultiply) between adjacent
// value-like tokens, and between a value-like token and a following prefix
// operator (spec §4.3).
func insertImplicitMultiply(seq []token.Token) []token.Token {
	out := make([]token.Token, 0, len(seq))
	for idx, t := range seq {
		if g, ok := t.(token.PreGroup); ok {
			t = token.PreGroup{SpanV: g.SpanV, Seq: insertImplicitMultiply(g.Seq)}
		}
		if idx > 0 {
			prev := seq[idx-1]
			if endsValue(prev) && (isValueLike(t) || isPrefixStarter(t)) && !bareNumberPair(prev, t) {
				junction := loc.At(t.Span().Pos)
				out = append(out, token.PreOperator{SpanV: junction, Op: token.ImplicitMultiply})
			}
		}
		out = append(out, t)
	}
	return out
}

// endsValue reports whether t closes off a value for implicit-multiply
// purposes: either a value-like token itself, or a postfix-unary operator
// (e.g. "!"), which always attaches to the value immediately on its left
// and so produces a value in turn — "3!3" reads as "(3!) * 3" (spec §8
// scenario 5).
func endsValue(t token.Token) bool {
	if isValueLike(t) {
		return true
	}
	op, ok := t.(token.PreOperator)
	return ok && token.FixityOf(op.Op) == token.PostfixUnary
}

// bareNumberPair reports whether a and b are both bare number literals,
// e.g. the two tokens in "5 2". Two adjacent number literals with nothing
// but whitespace between them are ambiguous with a single number written
// with internal whitespace, so they are left without an implicit multiply
// inserted: Treeify then rejects the pair as a syntax error instead of
// reading it as a multiplication ("5 2" is invalid, unlike "5(2)").
func bareNumberPair(a, b token.Token) bool {
	_, aNum := a.(token.PreNumber)
	_, bNum := b.(token.PreNumber)
	return aNum && bNum
}
