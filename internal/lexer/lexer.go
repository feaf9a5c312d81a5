// Package lexer implements Tokenize (spec §4.1): scanning a free-form
// character stream into an ordered, contiguous sequence of pre-tokens. The
// rune-class scanning loop (extend a run of like characters until the class
// changes, then emit) is modeled on CWBudde-go-dws/internal/lexer/lexer.go.
//
// Unlike the Rust reference, Go's Token is a single interface covering both
// the surface Pre* layer and the core value-carrier layer, so a recognized
// operator/constant/unit/variable word is emitted directly as the matching
// core token rather than needing a "PreGroup of one" wrapper.
package lexer

import (
	"strings"
	"unicode"

	"github.com/jharlow/unitcalc/internal/errors"
	"github.com/jharlow/unitcalc/internal/loc"
	"github.com/jharlow/unitcalc/internal/quantity"
	"github.com/jharlow/unitcalc/internal/token"
	"github.com/jharlow/unitcalc/internal/units"
)

type class int

const (
	classDigit class = iota
	classWord
	classOperator
	classOpenParen
	classCloseParen
	classWhitespace
	classSign // leading +/- that may fold into a number or stand as an operator
)

func classify(r rune) class {
	switch {
	case unicode.IsDigit(r) || r == '.':
		return classDigit
	case unicode.IsLetter(r) || r == '_' || r == 'π' || r == 'φ':
		return classWord
	case r == '(':
		return classOpenParen
	case r == ')':
		return classCloseParen
	case unicode.IsSpace(r):
		return classWhitespace
	case r == '+' || r == '-':
		return classSign
	default:
		return classOperator
	}
}

// operatorWords maps word-class runs to their operator, for names that read
// as words rather than symbols (spec §4.1, §B.3, §B.5).
var operatorWords = map[string]token.Operator{
	"mod":  token.ModuloLong,
	"to":   token.UnitConvert,
	"sqrt": token.Sqrt,
	"rt":   token.Sqrt,
}

// functionWords are unary function names forwarded to the scalar back-end
// (spec §B.4). "abs" and "sqrt" double as both an operator and a function in
// informal usage; sqrt is handled above as the dedicated Sqrt operator.
var functionWords = map[string]bool{
	"sin": true, "cos": true, "tan": true,
	"asin": true, "acos": true, "atan": true,
	"sinh": true, "cosh": true, "tanh": true,
	"asinh": true, "acosh": true, "atanh": true,
	"csc": true, "sec": true, "cot": true,
	"csch": true, "sech": true, "coth": true,
	"ln": true, "log": true, "log2": true,
	"exp": true, "abs": true,
	"fract": true, "floor": true, "ceil": true, "round": true,
}

// symbolOperators maps single/double-character operator symbols.
var symbolOperators = []struct {
	text string
	op   token.Operator
}{
	{":=", token.Define},
	{"*", token.Multiply},
	{"/", token.Divide},
	{"%", token.Modulo},
	{"^", token.Power},
	{"!", token.Factorial},
	{"√", token.Sqrt},
}

// Tokenize scans text into a contiguous sequence of pre-tokens. ctx is
// consulted so that bound variable names resolve directly to Variable
// tokens rather than falling through as unresolved words.
func Tokenize(text string, ctx *token.Context) ([]token.Token, error) {
	runes := []rune(text)
	var out []token.Token
	i := 0
	prevValueLike := false

	for i < len(runes) {
		r := runes[i]
		c := classify(r)

		switch c {
		case classWhitespace:
			i++
			continue

		case classOpenParen:
			out = append(out, token.PreGroupStart{SpanV: loc.Span{Pos: i, Len: 1}})
			i++
			prevValueLike = false
			continue

		case classCloseParen:
			out = append(out, token.PreGroupEnd{SpanV: loc.Span{Pos: i, Len: 1}})
			i++
			prevValueLike = true
			continue

		case classDigit:
			start := i
			dots := 0
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				if runes[i] == '.' {
					dots++
				}
				i++
			}
			digits := string(runes[start:i])
			if dots > 1 {
				return nil, errors.New(errors.Syntax, loc.Span{Pos: start, Len: i - start},
					"number %q has more than one decimal point", digits).WithSource(text)
			}
			if digits == "." {
				return nil, errors.New(errors.Syntax, loc.Span{Pos: start, Len: 1},
					"lone '.' is not a number").WithSource(text)
			}
			out = append(out, token.PreNumber{SpanV: loc.Span{Pos: start, Len: i - start}, Digits: digits})
			prevValueLike = true
			continue

		case classSign:
			// A sign is a binary operator when immediately following a
			// value-like token (number, word, close-paren, or a postfix
			// "!"); otherwise it is a unary prefix: a '-' becomes Negative
			// (consecutive ones stack in treeify) and a '+' is the identity
			// and is dropped here (spec §4.1, §4.4).
			start := i
			i++
			if !prevValueLike && r == '+' {
				continue
			}
			op := token.Subtract
			if r == '+' {
				op = token.Add
			}
			if !prevValueLike && r == '-' {
				op = token.Negative
			}
			out = append(out, token.PreOperator{SpanV: loc.Span{Pos: start, Len: 1}, Op: op})
			prevValueLike = false
			continue

		case classWord:
			start := i
			for i < len(runes) && classify(runes[i]) == classWord {
				i++
			}
			word := string(runes[start:i])
			span := loc.Span{Pos: start, Len: i - start}
			tok, err := resolveWord(word, span, ctx, text)
			if err != nil {
				return nil, err
			}
			out = append(out, tok)
			switch tok.(type) {
			case token.Constant, token.Variable, token.PreWord:
				// PreWord is value-like for adjacency purposes too: it still
				// occupies an operand position, and Groupify is responsible
				// for ultimately rejecting it as Undefined.
				prevValueLike = true
			default:
				// PreOperator: a keyword operator/function name, never
				// value-like.
				prevValueLike = false
			}
			continue

		default: // classOperator
			matched := false
			for _, so := range symbolOperators {
				if strings.HasPrefix(string(runes[i:]), so.text) {
					n := len([]rune(so.text))
					out = append(out, token.PreOperator{SpanV: loc.Span{Pos: i, Len: n}, Op: so.op})
					i += n
					matched = true
					// A postfix "!" leaves a completed value on its left.
					prevValueLike = so.op == token.Factorial
					break
				}
			}
			if !matched {
				return nil, errors.New(errors.Syntax, loc.Span{Pos: i, Len: 1},
					"unrecognized character %q", r).WithSource(text)
			}
			continue
		}
	}

	return out, nil
}

// resolveWord classifies a completed word run: operator keyword, function
// keyword, known constant/unit, Context-bound variable, or an unresolved
// PreWord for Groupify to fail on.
func resolveWord(word string, span loc.Span, ctx *token.Context, source string) (token.Token, error) {
	lower := strings.ToLower(word)

	if op, ok := operatorWords[lower]; ok {
		return token.PreOperator{SpanV: span, Op: op}, nil
	}
	if functionWords[lower] {
		return token.PreOperator{SpanV: span, Op: token.Function, Name: lower}, nil
	}
	if c, ok := units.Default().LookupConstant(word); ok {
		return token.Constant{SpanV: span, Name: word, Value: c}, nil
	}
	if u, ok := units.Default().LookupUnit(lower); ok {
		q := quantity.New(u.Coefficient, u.Unit)
		return token.Constant{SpanV: span, Name: word, Value: q}, nil
	}
	if ctx != nil {
		if _, ok := ctx.Lookup(word); ok {
			return token.Variable{SpanV: span, Name: word}, nil
		}
	}
	return token.PreWord{SpanV: span, Text: word}, nil
}
