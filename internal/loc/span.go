// Package loc tracks source positions as Unicode scalar-value offsets,
// not bytes. Every pre-token produced by the lexer carries a Span so that
// downstream stages (and ultimately error reporting) can point back at the
// exact slice of the original input that produced them.
package loc

// Span is a half-open range [Pos, Pos+Len) measured in runes from the start
// of the input string.
type Span struct {
	Pos int
	Len int
}

// End returns the first rune offset past the span.
func (s Span) End() int {
	return s.Pos + s.Len
}

// Zero reports whether the span covers no runes. Zero-length spans are used
// for synthetic tokens inserted during groupify (e.g. implicit multiply).
func (s Span) Zero() bool {
	return s.Len == 0
}

// Cover returns the smallest span containing both a and b, i.e. the span
// from the earlier start to the later end. Used when an error or a combined
// tree node must point at a range spanning multiple tokens (spec §4.4: "All
// errors carry a LineLocation whose span covers both offending operators").
func Cover(a, b Span) Span {
	start := a.Pos
	if b.Pos < start {
		start = b.Pos
	}
	end := a.End()
	if b.End() > end {
		end = b.End()
	}
	return Span{Pos: start, Len: end - start}
}

// At returns a zero-length span at offset pos, used for synthetic tokens.
func At(pos int) Span {
	return Span{Pos: pos, Len: 0}
}
