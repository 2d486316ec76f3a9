package command

import (
	"iter"
	"strings"

	"github.com/initiative-sh/initiative/internal/phrase"
)

// matchSequence matches children in order. Each candidate of the first
// child is explored depth-first: overflow descends into the remaining
// children with the unconsumed remainder, an exact ending mid-sequence
// requires the remaining children to accept empty input, and partial or
// incomplete candidates end the exploration at that point.
func matchSequence(children []Token, in phrase.Substr) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		if len(children) == 0 {
			if _, ok := phrase.FirstWord(in); ok {
				yield(overflowMatch(nil, in))
			} else {
				yield(exactMatch(nil))
			}
			return
		}

		head, tail := &children[0], children[1:]
		for m := range head.Match(in) {
			switch m.Class {
			case ClassExact:
				// The child consumed the whole input. The rest of the
				// sequence sees empty input; only children that accept
				// empty (Optional chains) keep this an exact match.
				for rest := range matchSequence(tail, in.End()) {
					if !yield(rest.prepend(m.Parts)) {
						return
					}
				}

			case ClassOverflow:
				for rest := range matchSequence(tail, m.Rest) {
					if !yield(rest.prepend(m.Parts)) {
						return
					}
				}

			case ClassPartial:
				completion := m.Completion + syntaxSuffix(tail)
				if !yield(partialMatch(m.Parts, completion)) {
					return
				}

			case ClassIncomplete:
				if !yield(incompleteMatch(m.Parts)) {
					return
				}
			}
		}
	}
}

// syntaxSuffix renders the written form of tokens that remain after a
// partial match, so that "d" can complete to "delete [name]" rather
// than just "delete".
func syntaxSuffix(pending []Token) string {
	var sb strings.Builder
	for i := range pending {
		s := pending[i].Syntax()
		if s == "" {
			continue
		}
		sb.WriteByte(' ')
		sb.WriteString(s)
	}
	return sb.String()
}
