package token

import (
	"github.com/jharlow/unitcalc/internal/loc"
	"github.com/jharlow/unitcalc/internal/quantity"
)

// Token is the sum type threaded through groupify/treeify/normalize/
// evaluate. Every concrete type below implements it with a private marker
// method so the set is closed to this package; consumers exhaustively type
// switch rather than relying on dynamic dispatch (spec §9's "Dynamic
// dispatch across Token variants" design note).
type Token interface {
	Span() loc.Span
	token()
}

// --- surface layer: produced by Tokenize, consumed by Groupify/Treeify ---

// PreNumber is an unparsed numeric literal's digit run.
type PreNumber struct {
	SpanV  loc.Span
	Digits string
}

func (p PreNumber) Span() loc.Span { return p.SpanV }
func (PreNumber) token()           {}

// PreWord is an unresolved identifier run; Groupify resolves it into a
// Constant or Variable, or fails Undefined.
type PreWord struct {
	SpanV loc.Span
	Text  string
}

func (p PreWord) Span() loc.Span { return p.SpanV }
func (PreWord) token()           {}

// PreOperator is a recognized operator token (explicit or synthesized, as
// for implicit multiply, which carries a zero-length span).
type PreOperator struct {
	SpanV loc.Span
	Op    Operator
	// Name carries the function name when Op == Function (e.g. "sin").
	Name string
}

func (p PreOperator) Span() loc.Span { return p.SpanV }
func (PreOperator) token()           {}

// PreGroupStart/PreGroupEnd are unmatched bracket markers as produced by
// Tokenize; Groupify consumes them in matching pairs.
type PreGroupStart struct{ SpanV loc.Span }

func (p PreGroupStart) Span() loc.Span { return p.SpanV }
func (PreGroupStart) token()           {}

type PreGroupEnd struct{ SpanV loc.Span }

func (p PreGroupEnd) Span() loc.Span { return p.SpanV }
func (PreGroupEnd) token()           {}

// PreGroup is a bracket-delimited (or root) sequence of tokens, produced by
// Groupify and consumed by Treeify.
type PreGroup struct {
	SpanV loc.Span
	Seq   []Token
}

func (p PreGroup) Span() loc.Span { return p.SpanV }
func (PreGroup) token()           {}

// --- core value carriers ---

// Quantity wraps a fully-resolved numeric literal or a reduced value.
type Quantity struct {
	SpanV loc.Span
	Value quantity.Quantity
}

func (q Quantity) Span() loc.Span { return q.SpanV }
func (Quantity) token()           {}

// Variable is an unresolved (or about-to-be-defined) name reference.
type Variable struct {
	SpanV loc.Span
	Name  string
}

func (v Variable) Span() loc.Span { return v.SpanV }
func (Variable) token()           {}

// Constant is a named value resolved at tokenize time (e.g. pi, e, or a named
// unit such as ft).
type Constant struct {
	SpanV loc.Span
	Name  string
	Value quantity.Quantity
}

func (c Constant) Span() loc.Span { return c.SpanV }
func (Constant) token()           {}

// --- core operator node ---

// OperatorNode is an operator applied to an ordered sequence of children. For
// Function, Name carries the function's name (e.g. "sin").
type OperatorNode struct {
	SpanV    loc.Span
	Op       Operator
	Name     string
	Children []Token
}

func (o OperatorNode) Span() loc.Span { return o.SpanV }
func (OperatorNode) token()           {}
