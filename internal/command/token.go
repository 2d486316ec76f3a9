// Package command implements the command language: declarative token
// trees describing grammars, and a streaming fuzzy matcher that
// evaluates an input phrase against them.
//
// A token tree is built once at startup from the constructors in this
// package and never mutated. Matching is pull-based: [Token.Match]
// returns a lazy iterator of candidates, and consumers may stop pulling
// at any point.
package command

import (
	"strings"

	"github.com/initiative-sh/initiative/internal/must"
)

// Marker is a label attached to a token tree node. Runners use markers
// to retrieve, by name, the part of the input captured under a
// particular node of the grammar.
type Marker string

// NoMarker is the zero marker carried by unannotated nodes.
const NoMarker Marker = ""

// Kind identifies a token variant. The set is closed; the matcher
// dispatches exhaustively over it.
type Kind int

// Token variants.
const (
	KindKeyword Kind = iota + 1
	KindKeywordList
	KindAnyWord
	KindAnyPhrase
	KindSequence
	KindOr
	KindAnyOf
	KindOptional
)

// Token is one node of a grammar tree. Tokens are immutable after
// construction and safe to share between turns.
type Token struct {
	kind     Kind
	marker   Marker
	keyword  string   // KindKeyword
	keywords []string // KindKeywordList
	children []Token  // composite kinds
}

// Kind returns the variant of the token.
func (t *Token) Kind() Kind { return t.kind }

// Marker returns the marker of the token, or [NoMarker].
func (t *Token) Marker() Marker { return t.marker }

// Children returns the child tokens of a composite token.
func (t *Token) Children() []Token { return t.children }

// Keyword matches a single word equal to kw case-insensitively.
func Keyword(kw string) Token {
	return KeywordM(NoMarker, kw)
}

// KeywordM is Keyword with a marker.
func KeywordM(m Marker, kw string) Token {
	must.NotBef(kw == "", "keyword token requires a non-empty keyword")
	return Token{kind: KindKeyword, marker: m, keyword: kw}
}

// KeywordList matches a single word whose case-folded form is one of
// the given keywords.
func KeywordList(kws ...string) Token {
	return KeywordListM(NoMarker, kws...)
}

// KeywordListM is KeywordList with a marker.
func KeywordListM(m Marker, kws ...string) Token {
	must.NotBef(len(kws) == 0, "keyword list token requires keywords")
	return Token{kind: KindKeywordList, marker: m, keywords: kws}
}

// AnyWord matches exactly one word, whatever its content.
func AnyWord() Token {
	return AnyWordM(NoMarker)
}

// AnyWordM is AnyWord with a marker.
func AnyWordM(m Marker) Token {
	return Token{kind: KindAnyWord, marker: m}
}

// AnyPhrase matches one or more words. Quoted groups count as a single
// word.
func AnyPhrase() Token {
	return AnyPhraseM(NoMarker)
}

// AnyPhraseM is AnyPhrase with a marker.
func AnyPhraseM(m Marker) Token {
	return Token{kind: KindAnyPhrase, marker: m}
}

// Sequence matches each child in order, left to right, with whitespace
// between them.
func Sequence(children ...Token) Token {
	return SequenceM(NoMarker, children...)
}

// SequenceM is Sequence with a marker.
func SequenceM(m Marker, children ...Token) Token {
	must.NotBef(len(children) == 0, "sequence token requires children")
	return Token{kind: KindSequence, marker: m, children: children}
}

// Or matches exactly one of its children. Several children may match
// the same input independently, each yielding its own candidate.
func Or(children ...Token) Token {
	return OrM(NoMarker, children...)
}

// OrM is Or with a marker.
func OrM(m Marker, children ...Token) Token {
	must.NotBef(len(children) == 0, "or token requires children")
	return Token{kind: KindOr, marker: m, children: children}
}

// AnyOf matches one or more distinct children in any order, without
// repetition.
func AnyOf(children ...Token) Token {
	return AnyOfM(NoMarker, children...)
}

// AnyOfM is AnyOf with a marker.
func AnyOfM(m Marker, children ...Token) Token {
	must.NotBef(len(children) == 0, "any-of token requires children")
	return Token{kind: KindAnyOf, marker: m, children: children}
}

// Optional matches its child or nothing.
func Optional(child Token) Token {
	return OptionalM(NoMarker, child)
}

// OptionalM is Optional with a marker.
func OptionalM(m Marker, child Token) Token {
	return Token{kind: KindOptional, marker: m, children: []Token{child}}
}

// Syntax renders the canonical written form of the token for help text
// and autocomplete suggestions. Wildcards render as their marker in
// brackets, keywords as themselves, and optional parts are omitted.
func (t *Token) Syntax() string {
	var sb strings.Builder
	t.writeSyntax(&sb)
	return sb.String()
}

func (t *Token) writeSyntax(sb *strings.Builder) {
	switch t.kind {
	case KindKeyword:
		pad(sb)
		sb.WriteString(t.keyword)
	case KindKeywordList:
		pad(sb)
		sb.WriteString(placeholder(t.marker))
	case KindAnyWord, KindAnyPhrase:
		pad(sb)
		sb.WriteString(placeholder(t.marker))
	case KindSequence:
		for i := range t.children {
			t.children[i].writeSyntax(sb)
		}
	case KindOr, KindAnyOf:
		t.children[0].writeSyntax(sb)
	case KindOptional:
		// Optional parts are left out of the canonical form.
	default:
		must.Failf("unknown token kind: %d", t.kind)
	}
}

func placeholder(m Marker) string {
	if m == NoMarker {
		return "[...]"
	}
	return "[" + string(m) + "]"
}

func pad(sb *strings.Builder) {
	if sb.Len() > 0 {
		sb.WriteByte(' ')
	}
}
