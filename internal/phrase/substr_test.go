package phrase_test

import (
	"testing"

	"github.com/initiative-sh/initiative/internal/phrase"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	assert.NotPanics(t, func() {
		phrase.New("", phrase.Span{0, 0}, phrase.Span{0, 0})
	})
	assert.NotPanics(t, func() {
		phrase.New("a", phrase.Span{0, 1}, phrase.Span{0, 1})
	})

	t.Run("InnerStartsBeforeOuter", func(t *testing.T) {
		assert.Panics(t, func() {
			phrase.New("abc", phrase.Span{0, 2}, phrase.Span{1, 3})
		})
	})

	t.Run("InnerEndsAfterOuter", func(t *testing.T) {
		assert.Panics(t, func() {
			phrase.New("abc", phrase.Span{1, 3}, phrase.Span{0, 2})
		})
	})

	t.Run("RangeTooLong", func(t *testing.T) {
		assert.Panics(t, func() {
			phrase.New("abc", phrase.Span{0, 2}, phrase.Span{0, 4})
		})
	})

	t.Run("SplitsCharacter", func(t *testing.T) {
		assert.Panics(t, func() {
			phrase.New("héllo", phrase.Span{2, 3}, phrase.Span{2, 3})
		})
	})
}

func TestStr(t *testing.T) {
	s := phrase.New("abcde", phrase.Span{2, 3}, phrase.Span{1, 4})

	assert.Equal(t, "c", s.Str())
	assert.Equal(t, "bcd", s.OuterStr())
	assert.Equal(t, "abcde", s.OriginalStr())
}

func TestIsAtEnd(t *testing.T) {
	assert.True(t, phrase.New("abc", phrase.Span{1, 2}, phrase.Span{1, 3}).IsAtEnd())
	assert.False(t, phrase.New("abc", phrase.Span{1, 2}, phrase.Span{1, 2}).IsAtEnd())
}

func TestIsQuoted(t *testing.T) {
	assert.True(t, phrase.New("abc", phrase.Span{1, 3}, phrase.Span{0, 3}).IsQuoted())
	assert.False(t, phrase.New("abc", phrase.Span{1, 3}, phrase.Span{1, 3}).IsQuoted())
}

func TestCanComplete(t *testing.T) {
	assert.True(t, phrase.New("abc", phrase.Span{1, 3}, phrase.Span{1, 3}).CanComplete())
	assert.False(t, phrase.New("abc", phrase.Span{1, 2}, phrase.Span{1, 2}).CanComplete(),
		"not at end")
	assert.False(t, phrase.New("abc", phrase.Span{1, 2}, phrase.Span{1, 3}).CanComplete(),
		"quoted")
}

func TestBeforeAfter(t *testing.T) {
	s := phrase.New("abc", phrase.Span{0, 1}, phrase.Span{0, 2})
	assert.Equal(t, "c", s.After().Str())
	assert.Equal(t, "", s.Before().Str())

	s = phrase.New(`"foo" "bar" baz`, phrase.Span{7, 10}, phrase.Span{6, 11})
	assert.Equal(t, "bar", s.Str())
	assert.Equal(t, ` baz`, s.After().Str())
	assert.Equal(t, `"foo" `, s.Before().Str())
}

func TestWithWindow(t *testing.T) {
	s := phrase.New(`"foo" "bar" baz`, phrase.Span{7, 10}, phrase.Span{6, 11})
	windowed := s.WithWindow(phrase.Span{1, 4}, phrase.Span{0, 5})

	assert.Equal(t, "bar", s.Str())
	assert.Equal(t, "foo", windowed.Str())
	assert.Equal(t, ` "bar" baz`, windowed.After().Str())
}

func TestOriginalCharIndices(t *testing.T) {
	s := phrase.New(`foo "bar" baz`, phrase.Span{5, 8}, phrase.Span{4, 9})

	var offsets []int
	var runes []rune
	for i, r := range s.OriginalCharIndices() {
		offsets = append(offsets, i)
		runes = append(runes, r)
	}

	assert.Equal(t, []int{5, 6, 7}, offsets)
	assert.Equal(t, []rune{'b', 'a', 'r'}, runes)
}

func TestFromString(t *testing.T) {
	s := phrase.FromString("hello world")
	assert.Equal(t, "hello world", s.Str())
	assert.True(t, s.IsAtEnd())
	assert.False(t, s.IsQuoted())
	assert.Equal(t, 11, s.OriginalLen())
}
