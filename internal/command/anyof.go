package command

import (
	"iter"

	"github.com/initiative-sh/initiative/internal/phrase"
)

// matchAnyOf explores combinations of distinct children. At each step
// any not-yet-used child may consume words at the current position;
// candidates are emitted after at least one child has matched, shorter
// combinations before their extensions.
//
// Partial and incomplete candidates are only lifted before any child
// has been consumed. Expanding them per combination would explode the
// autocomplete surface without adding reachable inputs.
func (t *Token) matchAnyOf(in phrase.Substr) iter.Seq[Match] {
	return anyOfStep(t.children, 0, in)
}

func anyOfStep(children []Token, used uint64, in phrase.Substr) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for i := range children {
			if used&(1<<uint(i)) != 0 {
				continue
			}

			for m := range children[i].Match(in) {
				switch m.Class {
				case ClassExact:
					if !yield(m) {
						return
					}

				case ClassOverflow:
					// Ungreedy: the combination ending here comes first,
					// then richer combinations consuming more children.
					if !yield(m) {
						return
					}
					for rest := range anyOfStep(children, used|1<<uint(i), m.Rest) {
						if !yield(rest.prepend(m.Parts)) {
							return
						}
					}

				case ClassPartial, ClassIncomplete:
					if used != 0 {
						continue
					}
					if !yield(m) {
						return
					}
				}
			}
		}
	}
}
