package phrase_test

import (
	"testing"

	"github.com/initiative-sh/initiative/internal/phrase"
	"github.com/stretchr/testify/assert"
)

func TestEqualFold(t *testing.T) {
	assert.True(t, phrase.EqualFold("", ""))
	assert.True(t, phrase.EqualFold("abc", "abC"))
	assert.True(t, phrase.EqualFold("p🥔tat🥔", "P🥔TAT🥔"))
	assert.False(t, phrase.EqualFold("abc", "abcd"))
	assert.False(t, phrase.EqualFold("🥔", "potato"))
}

func TestCutPrefixFold(t *testing.T) {
	tests := []struct {
		s, prefix string
		wantRest  string
		wantOK    bool
	}{
		{"badger", "BADG", "er", true},
		{"badger", "badger", "", true},
		{"badger", "", "badger", true},
		{"badger", "mush", "", false},
		{"bad", "badger", "", false},
		{"Éclair", "éc", "lair", true},
		{"🥔tato", "🥔", "tato", true},
	}

	for _, tt := range tests {
		rest, ok := phrase.CutPrefixFold(tt.s, tt.prefix)
		assert.Equal(t, tt.wantOK, ok, "CutPrefixFold(%q, %q)", tt.s, tt.prefix)
		if ok {
			assert.Equal(t, tt.wantRest, rest, "CutPrefixFold(%q, %q)", tt.s, tt.prefix)
		}
	}
}

func TestHasPrefixFold(t *testing.T) {
	assert.True(t, phrase.HasPrefixFold("Dancing Lights", "danc"))
	assert.False(t, phrase.HasPrefixFold("Dancing Lights", "dark"))
}

func TestCompareFold(t *testing.T) {
	assert.Negative(t, phrase.CompareFold("Darkvision", "date"))
	assert.Negative(t, phrase.CompareFold("date", "Daylight"))
	assert.Positive(t, phrase.CompareFold("desert", "Demiplane"))
	assert.Zero(t, phrase.CompareFold("same", "same"))
	assert.NotZero(t, phrase.CompareFold("Same", "same"), "total order breaks ties by bytes")
}
