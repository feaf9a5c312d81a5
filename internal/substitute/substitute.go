// Package substitute implements Substitute and SubstituteCursor (spec
// §4.2): a user-facing textual rewrite over common surface forms (e.g.
// "pi" → "π", "sqrt" → "√", "<=" → "≤"), built in one left-to-right pass over
// the original text so every span's offsets stay valid, with a
// cursor-preserving variant for live-editing UIs.
// The rewrite table is external data in the spirit of
// CWBudde-go-dws/internal/lexer's keyword tables; unlike Tokenize's word
// resolution it runs over raw text, before any lexing.
package substitute

import (
	"strings"
	"unicode"

	"github.com/jharlow/unitcalc/internal/token"
)

// rewrite is one entry in the table: Match is looked up literally (symbol
// forms like "<=") or as a whole word (word forms like "pi"), per Word.
type rewrite struct {
	Match       string
	Replacement string
	Word        bool
}

// table is the rewrite set (spec §4.2: "the exact table is external
// data"). Word-classed entries only fire on a complete identifier run, so
// "pie" is untouched but "pi" alone becomes "π".
var table = []rewrite{
	{Match: "sqrt", Replacement: "√", Word: true},
	{Match: "pi", Replacement: "π", Word: true},
	{Match: "phi", Replacement: "φ", Word: true},
	{Match: "<=", Replacement: "≤"},
	{Match: ">=", Replacement: "≥"},
	{Match: "!=", Replacement: "≠"},
	{Match: "->", Replacement: "→"},
}

// span is one matched, to-be-replaced occurrence in the source text.
type span struct {
	pos, len int
	replace  string
}

// Substitute rewrites text per the table, unconditionally. ctx is accepted
// for signature symmetry with Tokenize; the table is purely lexical today
// and does not consult it.
func Substitute(text string, ctx *token.Context) string {
	_, out := SubstituteCursor(text, -1, ctx)
	return out
}

// SubstituteCursor rewrites text per the table and reports where cursor
// (a Unicode scalar offset into the original text) lands afterward. A
// cursor of -1 means "no cursor to track" (used by Substitute).
//
// Per spec §4.2: a span that strictly contains the cursor is left
// unrewritten (so editing mid-token is never surprised by a rewrite firing
// underneath the caret); every other applied span whose end is at or
// before the cursor shifts it by len(replacement)-len(original).
func SubstituteCursor(text string, cursor int, ctx *token.Context) (int, string) {
	runes := []rune(text)
	spans := findSpans(runes)

	newCursor := cursor
	for _, s := range spans {
		if cursor >= 0 && s.pos < cursor && cursor < s.pos+s.len {
			continue // straddles the cursor: suppress this rewrite
		}
		if cursor >= 0 && s.pos+s.len <= cursor {
			newCursor += len([]rune(s.replace)) - s.len
		}
	}

	var sb strings.Builder
	last := 0
	for _, s := range spans {
		if cursor >= 0 && s.pos < cursor && cursor < s.pos+s.len {
			continue
		}
		sb.WriteString(string(runes[last:s.pos]))
		sb.WriteString(s.replace)
		last = s.pos + s.len
	}
	sb.WriteString(string(runes[last:]))

	return newCursor, sb.String()
}

// findSpans scans runes left to right for non-overlapping table matches,
// taking the first table entry that matches at each position.
func findSpans(runes []rune) []span {
	var spans []span
	i := 0
	for i < len(runes) {
		matched := false
		for _, rw := range table {
			m := []rune(rw.Match)
			if i+len(m) > len(runes) {
				continue
			}
			if string(runes[i:i+len(m)]) != rw.Match {
				continue
			}
			if rw.Word && !isWordBoundaryMatch(runes, i, len(m)) {
				continue
			}
			spans = append(spans, span{pos: i, len: len(m), replace: rw.Replacement})
			i += len(m)
			matched = true
			break
		}
		if !matched {
			i++
		}
	}
	return spans
}

// isWordBoundaryMatch reports whether runes[i:i+n] is a complete
// identifier run: not preceded or followed by another word character.
func isWordBoundaryMatch(runes []rune, i, n int) bool {
	if i > 0 && isWordRune(runes[i-1]) {
		return false
	}
	if i+n < len(runes) && isWordRune(runes[i+n]) {
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
