// Package phrase provides zero-copy views over a single line of user
// input. A [Substr] is a window into the original string with two byte
// ranges: the inner range holds the semantic content, and the outer range
// additionally covers any quote characters consumed around it. The two
// ranges differ only for quoted words.
//
// Substrings never copy the original string. They are valid for as long
// as the input line they reference.
package phrase

import (
	"iter"
	"unicode/utf8"

	"github.com/initiative-sh/initiative/internal/must"
)

// Span is a half-open byte range [Start, End) into the original string.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Substr is a window into an input string.
//
// Invariant: outer.Start <= inner.Start <= inner.End <= outer.End <= len(src).
type Substr struct {
	src   string
	inner Span
	outer Span
}

// New constructs a Substr over src with the given inner and outer ranges.
// It panics if the ranges violate the Substr invariant or split a
// multi-byte character.
func New(src string, inner, outer Span) Substr {
	must.BeLessEqf(outer.Start, inner.Start, "substr: outer.Start > inner.Start")
	must.BeLessEqf(inner.Start, inner.End, "substr: inner.Start > inner.End")
	must.BeLessEqf(inner.End, outer.End, "substr: inner.End > outer.End")
	must.BeLessEqf(outer.End, len(src), "substr: outer.End > len(src)")
	must.BeLessEqf(0, outer.Start, "substr: negative outer.Start")

	for _, idx := range [...]int{inner.Start, inner.End, outer.Start, outer.End} {
		must.Bef(boundary(src, idx), "substr: index %d splits a character", idx)
	}

	return Substr{src: src, inner: inner, outer: outer}
}

// FromString returns a Substr covering all of src.
func FromString(src string) Substr {
	all := Span{0, len(src)}
	return Substr{src: src, inner: all, outer: all}
}

// WithWindow returns a Substr over the same original string with the
// given ranges. The ranges are relative to the original string, not to
// the current window.
func (s Substr) WithWindow(inner, outer Span) Substr {
	return New(s.src, inner, outer)
}

// Str returns the inner content of the window.
func (s Substr) Str() string {
	return s.src[s.inner.Start:s.inner.End]
}

// OuterStr returns the window content including quotes, if any.
func (s Substr) OuterStr() string {
	return s.src[s.outer.Start:s.outer.End]
}

// OriginalStr returns the entire original string.
func (s Substr) OriginalStr() string {
	return s.src
}

// Inner returns the inner range.
func (s Substr) Inner() Span { return s.inner }

// Outer returns the outer range, ie. including quotes (if any).
func (s Substr) Outer() Span { return s.outer }

// IsAtEnd reports whether the window ends at the end of the original
// string, counting consumed-but-ignored characters such as quotes.
func (s Substr) IsAtEnd() bool {
	return s.outer.End == len(s.src)
}

// IsQuoted reports whether the window consumed characters that are not
// part of its content (ie. quotation marks).
func (s Substr) IsQuoted() bool {
	return s.inner != s.outer
}

// CanComplete reports whether typing more characters at the end of the
// original string would extend this window. Quoted words cannot be
// extended because the closing quote ends them.
func (s Substr) CanComplete() bool {
	return s.IsAtEnd() && !s.IsQuoted()
}

// Before returns the window over the start of the original string,
// ending where this one begins.
func (s Substr) Before() Substr {
	at := Span{0, s.outer.Start}
	return s.WithWindow(at, at)
}

// After returns the window over the remainder of the original string,
// starting where this one ends.
func (s Substr) After() Substr {
	rest := Span{s.outer.End, len(s.src)}
	return s.WithWindow(rest, rest)
}

// End returns the empty window at the very end of the original string.
func (s Substr) End() Substr {
	at := Span{len(s.src), len(s.src)}
	return s.WithWindow(at, at)
}

// IsEmpty reports whether the inner content is empty.
func (s Substr) IsEmpty() bool {
	return s.inner.Len() == 0
}

// OriginalCharIndices iterates over the runes of the inner content,
// yielding each rune with its byte offset in the original string.
func (s Substr) OriginalCharIndices() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		for i, r := range s.Str() {
			if !yield(i+s.inner.Start, r) {
				return
			}
		}
	}
}

// OriginalLen returns the length of the original string in bytes.
func (s Substr) OriginalLen() int {
	return len(s.src)
}

func boundary(s string, idx int) bool {
	if idx == 0 || idx == len(s) {
		return true
	}
	if idx < 0 || idx > len(s) {
		return false
	}
	return utf8.RuneStart(s[idx])
}
