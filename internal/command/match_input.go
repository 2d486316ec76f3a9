package command

import (
	"iter"

	"github.com/initiative-sh/initiative/internal/must"
	"github.com/initiative-sh/initiative/internal/phrase"
)

// Match streams the candidates of matching the token against the input.
//
// Candidates are produced lazily; the caller may abandon the sequence at
// any point. Matching never fails: a grammar that cannot accept the
// input yields an empty sequence. Within a composite, child candidates
// are explored depth-first from the leftmost token, and [Or] preserves
// child declaration order.
func (t *Token) Match(in phrase.Substr) iter.Seq[Match] {
	seq := t.matchInput(in)

	// Leaves tag their own parts. A marked composite contributes an
	// additional part covering its consumed span so that runners can
	// retrieve the region by the composite's marker.
	switch t.kind {
	case KindKeyword, KindKeywordList, KindAnyWord, KindAnyPhrase:
		return seq
	}
	if t.marker == NoMarker {
		return seq
	}

	return func(yield func(Match) bool) {
		for m := range seq {
			if len(m.Parts) > 0 {
				span := phrase.Span{
					Start: m.Parts[0].Sub.Outer().Start,
					End:   m.Parts[len(m.Parts)-1].Sub.Outer().End,
				}
				cover := in.WithWindow(span, span)
				m = m.prepend(List{{Sub: cover, Marker: t.marker}})
			}
			if !yield(m) {
				return
			}
		}
	}
}

func (t *Token) matchInput(in phrase.Substr) iter.Seq[Match] {
	switch t.kind {
	case KindKeyword:
		return t.matchKeyword(in)
	case KindKeywordList:
		return t.matchKeywordList(in)
	case KindAnyWord:
		return t.matchAnyWord(in)
	case KindAnyPhrase:
		return t.matchAnyPhrase(in)
	case KindSequence:
		return matchSequence(t.children, in)
	case KindOr:
		return t.matchOr(in)
	case KindAnyOf:
		return t.matchAnyOf(in)
	case KindOptional:
		return t.matchOptional(in)
	default:
		must.Failf("unknown token kind: %d", t.kind)
		return nil
	}
}

// matchOneKeyword implements Keyword semantics for a single canonical
// keyword. It is shared by Keyword and KeywordList.
func matchOneKeyword(kw string, m Marker, in phrase.Substr) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		w, ok := phrase.FirstWord(in)
		if !ok {
			// Input exhausted with the keyword still pending. The
			// canonical term is carried for autocomplete.
			yield(incompleteMatch(List{{Sub: in.End(), Term: kw, Marker: m}}))
			return
		}

		if phrase.EqualFold(w.Str(), kw) {
			part := List{{Sub: w, Term: kw, Marker: m}}
			if _, more := phrase.FirstWord(w.After()); more {
				yield(overflowMatch(part, w.After()))
			} else {
				yield(exactMatch(part))
			}
			return
		}

		if suffix, ok := phrase.CutPrefixFold(kw, w.Str()); ok && suffix != "" && w.CanComplete() {
			yield(partialMatch(List{{Sub: w, Term: kw, Marker: m}}, suffix))
		}
	}
}

func (t *Token) matchKeyword(in phrase.Substr) iter.Seq[Match] {
	return matchOneKeyword(t.keyword, t.marker, in)
}

func (t *Token) matchKeywordList(in phrase.Substr) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		type key struct {
			class      Class
			term       string
			completion string
		}
		seen := make(map[key]struct{})

		for _, kw := range t.keywords {
			for m := range matchOneKeyword(kw, t.marker, in) {
				k := key{m.Class, kw, m.Completion}
				if _, ok := seen[k]; ok {
					continue
				}
				seen[k] = struct{}{}
				if !yield(m) {
					return
				}
			}
		}
	}
}

func (t *Token) matchAnyWord(in phrase.Substr) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		w, ok := phrase.FirstWord(in)
		if !ok {
			yield(incompleteMatch(List{{Sub: in.End(), Marker: t.marker}}))
			return
		}

		part := List{{Sub: w, Marker: t.marker}}
		if _, more := phrase.FirstWord(w.After()); more {
			yield(overflowMatch(part, w.After()))
		} else {
			yield(exactMatch(part))
		}
	}
}

func (t *Token) matchAnyPhrase(in phrase.Substr) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		var (
			first phrase.Substr
			last  phrase.Substr
			count int
		)

		next, stop := iter.Pull(phrase.Words(in))
		defer stop()

		w, ok := next()
		if !ok {
			yield(incompleteMatch(List{{Sub: in.End(), Marker: t.marker}}))
			return
		}

		for ok {
			count++
			if count == 1 {
				first = w
			}
			last = w

			part := t.phrasePart(in, first, last, count)
			w, ok = next()
			if ok {
				if !yield(overflowMatch(List{part}, last.After())) {
					return
				}
			} else {
				yield(exactMatch(List{part}))
			}
		}
	}
}

// phrasePart builds the part covering the first count words of a
// phrase. A single word keeps its own quote-aware window; a span of
// several words covers everything between the first and last word,
// quotes included.
func (t *Token) phrasePart(in, first, last phrase.Substr, count int) Part {
	if count == 1 {
		return Part{Sub: first, Marker: t.marker}
	}
	span := phrase.Span{Start: first.Outer().Start, End: last.Outer().End}
	return Part{Sub: in.WithWindow(span, span), Marker: t.marker}
}
