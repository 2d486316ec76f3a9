package phrase

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Words returns a lazy iterator over the whitespace-separated words of
// the substring's content.
//
// A double-quoted group is yielded as a single word: its inner range
// excludes the quotes and its outer range includes them. An unclosed
// opening quote consumes the remainder of the input. Empty quotes yield
// a word with empty content whose outer range covers both quote
// characters. A quote in the middle of a word ends that word and starts
// a quoted one.
//
// The iterator carries only byte offsets, so restarting it is cheap.
// Every word is yielded exactly once, in order.
func Words(s Substr) iter.Seq[Substr] {
	return func(yield func(Substr) bool) {
		src := s.src
		pos := s.inner.Start
		end := s.inner.End

		for pos < end {
			r, n := utf8.DecodeRuneInString(src[pos:end])
			if unicode.IsSpace(r) {
				pos += n
				continue
			}

			if r == '"' {
				quote := pos
				pos += n
				if rel := strings.IndexByte(src[pos:end], '"'); rel >= 0 {
					word := New(src, Span{pos, pos + rel}, Span{quote, pos + rel + 1})
					pos += rel + 1
					if !yield(word) {
						return
					}
					continue
				}

				// Unclosed quote: the rest of the input is one word.
				yield(New(src, Span{pos, end}, Span{quote, end}))
				return
			}

			start := pos
			for pos < end {
				r, n := utf8.DecodeRuneInString(src[pos:end])
				if unicode.IsSpace(r) || r == '"' {
					break
				}
				pos += n
			}
			at := Span{start, pos}
			if !yield(New(src, at, at)) {
				return
			}
		}
	}
}

// FirstWord returns the first word of the substring, if any.
func FirstWord(s Substr) (Substr, bool) {
	for w := range Words(s) {
		return w, true
	}
	return Substr{}, false
}

// CountWords returns the number of words in the substring.
func CountWords(s Substr) int {
	var n int
	for range Words(s) {
		n++
	}
	return n
}
