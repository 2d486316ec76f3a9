package command

import (
	"strings"

	"github.com/initiative-sh/initiative/internal/phrase"
)

// Class is the classification of a fuzzy match candidate.
type Class int

// Match classifications.
const (
	// ClassExact consumed the entire input up to trailing whitespace.
	ClassExact Class = iota + 1

	// ClassOverflow accepted a prefix of the input; the remainder is
	// carried in [Match.Rest].
	ClassOverflow

	// ClassPartial means the input ended mid-token; appending
	// [Match.Completion] would make the grammar accept.
	ClassPartial

	// ClassIncomplete means the input ran out before the grammar
	// completed and no single completion is known.
	ClassIncomplete
)

func (c Class) String() string {
	switch c {
	case ClassExact:
		return "exact"
	case ClassOverflow:
		return "overflow"
	case ClassPartial:
		return "partial"
	case ClassIncomplete:
		return "incomplete"
	default:
		return "invalid"
	}
}

// Part records one matched region of the input: the substring that
// matched, the matcher's canonical term (the keyword text, used for
// partial-match completion), and the marker of the node that produced
// the part.
type Part struct {
	Sub    phrase.Substr
	Term   string
	Marker Marker
}

// List is an ordered sequence of match parts.
type List []Part

// Marked returns the substring captured by the first part carrying the
// given marker.
func (l List) Marked(m Marker) (phrase.Substr, bool) {
	for _, p := range l {
		if p.Marker == m {
			return p.Sub, true
		}
	}
	return phrase.Substr{}, false
}

// MarkedStr returns the content captured under the given marker, or ""
// if the marker did not match.
func (l List) MarkedStr(m Marker) string {
	sub, ok := l.Marked(m)
	if !ok {
		return ""
	}
	return sub.Str()
}

// MarkedTerm returns the canonical term of the first part carrying the
// given marker. For keyword parts this is the keyword's canonical
// spelling regardless of how the user typed it.
func (l List) MarkedTerm(m Marker) string {
	for _, p := range l {
		if p.Marker == m {
			return p.Term
		}
	}
	return ""
}

// Str renders the matched parts joined by single spaces, preferring the
// canonical term of each part.
func (l List) Str() string {
	var sb strings.Builder
	for _, p := range l {
		s := p.Term
		if s == "" {
			s = p.Sub.Str()
		}
		if s == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s)
	}
	return sb.String()
}

// Match is one candidate yielded by the matcher.
type Match struct {
	Class      Class
	Parts      List
	Rest       phrase.Substr // ClassOverflow: the unconsumed remainder
	Completion string        // ClassPartial: suffix that would complete the input
}

func exactMatch(parts List) Match {
	return Match{Class: ClassExact, Parts: parts}
}

func overflowMatch(parts List, rest phrase.Substr) Match {
	return Match{Class: ClassOverflow, Parts: parts, Rest: rest}
}

func partialMatch(parts List, completion string) Match {
	return Match{Class: ClassPartial, Parts: parts, Completion: completion}
}

func incompleteMatch(parts List) Match {
	return Match{Class: ClassIncomplete, Parts: parts}
}

// prepend returns a copy of the match with the given parts in front of
// its own. Matches are values; candidates already yielded are never
// mutated.
func (m Match) prepend(parts List) Match {
	if len(parts) == 0 {
		return m
	}
	combined := make(List, 0, len(parts)+len(m.Parts))
	combined = append(combined, parts...)
	combined = append(combined, m.Parts...)
	m.Parts = combined
	return m
}
