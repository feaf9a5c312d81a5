// Package calc is the public facade over the calculator pipeline
// (tokenize → groupify → treeify → normalize → evaluate), modeled on
// CWBudde-go-dws/pkg/dwscript's Engine (New/Parse/Compile/Eval). An Engine
// owns a variable Context that persists across calls, so a REPL-style
// caller can define a variable in one Eval and reference it in the next.
package calc

import (
	"github.com/jharlow/unitcalc/internal/eval"
	"github.com/jharlow/unitcalc/internal/groupify"
	"github.com/jharlow/unitcalc/internal/lexer"
	"github.com/jharlow/unitcalc/internal/normalize"
	"github.com/jharlow/unitcalc/internal/quantity"
	"github.com/jharlow/unitcalc/internal/substitute"
	"github.com/jharlow/unitcalc/internal/token"
	"github.com/jharlow/unitcalc/internal/treeify"
)

// Engine runs the pipeline over successive lines of input, sharing one
// variable Context across them.
type Engine struct {
	ctx *token.Context
}

// New returns a fresh Engine with an empty variable context.
func New() *Engine {
	return &Engine{ctx: token.NewContext()}
}

// Reset discards every variable definition bound so far.
func (e *Engine) Reset() {
	e.ctx = token.NewContext()
}

// Substitute rewrites text's common surface shorthands (spec §4.2) without
// touching the engine's variable context.
func (e *Engine) Substitute(text string) string {
	return substitute.Substitute(text, e.ctx)
}

// SubstituteCursor is Substitute with cursor tracking, for live-editing
// callers (spec §4.2).
func (e *Engine) SubstituteCursor(text string, cursor int) (int, string) {
	return substitute.SubstituteCursor(text, cursor, e.ctx)
}

// Parse runs the pipeline through Normalize and returns the canonical tree
// without evaluating it, e.g. for inspection or pretty-printing tools.
func (e *Engine) Parse(text string) (token.Token, error) {
	tree, err := e.build(text)
	if err != nil {
		return nil, err
	}
	return tree, nil
}

// Eval runs the full pipeline (Tokenize → Groupify → Treeify → Normalize →
// Evaluate) over text and returns the resulting Quantity, binding any
// defined variable into the engine's context for later calls.
func (e *Engine) Eval(text string) (quantity.Quantity, error) {
	tree, err := e.build(text)
	if err != nil {
		return quantity.Quantity{}, err
	}
	return eval.Evaluate(tree, e.ctx, text)
}

// EvalString runs Eval and formats the result with Quantity.String.
func (e *Engine) EvalString(text string) (string, error) {
	q, err := e.Eval(text)
	if err != nil {
		return "", err
	}
	return q.String(), nil
}

func (e *Engine) build(text string) (token.Token, error) {
	toks, err := lexer.Tokenize(text, e.ctx)
	if err != nil {
		return nil, err
	}
	group, err := groupify.Groupify(toks, e.ctx, text)
	if err != nil {
		return nil, err
	}
	tree, err := treeify.Treeify(group, text)
	if err != nil {
		return nil, err
	}
	return normalize.Normalize(tree), nil
}

// ParseNoContext runs Parse with a throwaway context, for one-shot callers
// that don't need variables to persist (e.g. the "parse" CLI subcommand).
func ParseNoContext(text string) (token.Token, error) {
	return New().Parse(text)
}

// Eval is a package-level convenience wrapping a throwaway Engine, for
// one-shot, stateless evaluation.
func Eval(text string) (quantity.Quantity, error) {
	return New().Eval(text)
}
