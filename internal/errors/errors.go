// Package errors defines the closed error taxonomy surfaced across the
// calculator pipeline, and formats a CalcError with source context and a
// caret pointing at the offending span, the way a compiler error prints.
package errors

import (
	"fmt"
	"strings"

	"github.com/jharlow/unitcalc/internal/loc"
)

// Kind is the closed set of user-visible error kinds (spec §7).
type Kind int

const (
	// Syntax marks malformed input at the lex/group/tree level.
	Syntax Kind = iota
	// Undefined marks a word token that is not a constant, unit, or bound
	// variable.
	Undefined
	// BadDefineName marks a ':=' whose left side is not a bare variable.
	BadDefineName
	// IncompatibleUnit marks a unit-compatibility violation (add, power
	// exponent, trig argument, unit convert, function argument).
	IncompatibleUnit
	// ZeroDivision marks 1/0 or 0^negative.
	ZeroDivision
	// BadMath marks a non-integer modulo operand, modulus <= 1, a
	// non-integer factorial operand, or a NaN power result.
	BadMath
	// TooBig marks a factorial operand exceeding the 50,000 cap.
	TooBig
)

func (k Kind) String() string {
	switch k {
	case Syntax:
		return "Syntax"
	case Undefined:
		return "Undefined"
	case BadDefineName:
		return "BadDefineName"
	case IncompatibleUnit:
		return "IncompatibleUnit"
	case ZeroDivision:
		return "ZeroDivision"
	case BadMath:
		return "BadMath"
	case TooBig:
		return "TooBig"
	default:
		return "Unknown"
	}
}

// CalcError is the single error type returned across the pipeline. Span is
// always relative to the original, pre-substitution input (spec §6).
type CalcError struct {
	Kind    Kind
	Message string
	Span    loc.Span
	Source  string // original input, for caret rendering; may be empty
}

// New constructs a CalcError for the given kind, message and span.
func New(kind Kind, span loc.Span, format string, args ...any) *CalcError {
	return &CalcError{Kind: kind, Message: fmt.Sprintf(format, args...), Span: span}
}

// WithSource attaches the original input text so Format can render a caret.
func (e *CalcError) WithSource(source string) *CalcError {
	e.Source = source
	return e
}

// Error implements the error interface.
func (e *CalcError) Error() string {
	return e.Format(false)
}

// Format renders the error with a one-line source excerpt and a caret
// pointing at e.Span, optionally with ANSI color, in the style of a
// compiler diagnostic.
func (e *CalcError) Format(color bool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s at position %d", e.Kind, e.Span.Pos)
	if e.Span.Len > 1 {
		fmt.Fprintf(&sb, "-%d", e.Span.End())
	}
	sb.WriteString(": ")
	sb.WriteString(e.Message)

	if e.Source != "" {
		runes := []rune(e.Source)
		sb.WriteString("\n  ")
		sb.WriteString(e.Source)
		sb.WriteString("\n  ")
		pos := e.Span.Pos
		if pos > len(runes) {
			pos = len(runes)
		}
		sb.WriteString(strings.Repeat(" ", pos))
		if color {
			sb.WriteString("\033[1;31m")
		}
		width := e.Span.Len
		if width < 1 {
			width = 1
		}
		sb.WriteString(strings.Repeat("^", width))
		if color {
			sb.WriteString("\033[0m")
		}
	}

	return sb.String()
}

// Is reports whether err is a CalcError of the given kind, for use with
// errors.Is-style assertions in tests.
func Is(err error, kind Kind) bool {
	ce, ok := err.(*CalcError)
	return ok && ce.Kind == kind
}
