package command

import (
	"iter"

	"github.com/initiative-sh/initiative/internal/phrase"
)

// matchOr emits every child's candidates in declaration order, without
// deduplication.
func (t *Token) matchOr(in phrase.Substr) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for i := range t.children {
			for m := range t.children[i].Match(in) {
				if !yield(m) {
					return
				}
			}
		}
	}
}

// matchOptional emits the match-nothing candidate first (overflow when
// input remains, exact otherwise), then everything its child emits.
func (t *Token) matchOptional(in phrase.Substr) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		if _, ok := phrase.FirstWord(in); ok {
			if !yield(overflowMatch(nil, in)) {
				return
			}
		} else {
			if !yield(exactMatch(nil)) {
				return
			}
		}

		for m := range t.children[0].Match(in) {
			if !yield(m) {
				return
			}
		}
	}
}
