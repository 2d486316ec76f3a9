package gametime_test

import (
	"testing"

	"github.com/initiative-sh/initiative/internal/gametime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterval(t *testing.T) {
	tests := []struct {
		give string
		want gametime.Interval
	}{
		{give: "1d", want: gametime.Interval{Days: 1}},
		{give: "2h30m", want: gametime.Interval{Hours: 2, Minutes: 30}},
		{give: "3r", want: gametime.Interval{Rounds: 3}},
		{give: "10s", want: gametime.Interval{Seconds: 10}},
		{give: "5", want: gametime.Interval{Days: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			got, err := gametime.ParseInterval(tt.give)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("Invalid", func(t *testing.T) {
		for _, give := range []string{"", "d", "1x", "potato", "1d potato"} {
			_, err := gametime.ParseInterval(give)
			assert.Error(t, err, "input %q", give)
		}
	})
}

func TestIntervalDisplayLong(t *testing.T) {
	assert.Equal(t, "1 day", gametime.Interval{Days: 1}.DisplayLong())
	assert.Equal(t, "2 hours, 30 minutes",
		gametime.Interval{Hours: 2, Minutes: 30}.DisplayLong())
	assert.Equal(t, "1 round", gametime.Interval{Rounds: 1}.DisplayLong())
	assert.Equal(t, "no time", gametime.Interval{}.DisplayLong())
}

func TestTimeAddSub(t *testing.T) {
	start := gametime.Start

	t.Run("AddDay", func(t *testing.T) {
		got, ok := start.Add(gametime.Interval{Days: 1})
		require.True(t, ok)
		assert.Equal(t, gametime.Time{Day: 2, Hour: 8}, got)
	})

	t.Run("HourRollover", func(t *testing.T) {
		got, ok := start.Add(gametime.Interval{Hours: 20})
		require.True(t, ok)
		assert.Equal(t, gametime.Time{Day: 2, Hour: 4}, got)
	})

	t.Run("Rounds", func(t *testing.T) {
		got, ok := start.Add(gametime.Interval{Rounds: 10})
		require.True(t, ok)
		assert.Equal(t, gametime.Time{Day: 1, Hour: 8, Minute: 1}, got)
	})

	t.Run("SubBeforeDayOne", func(t *testing.T) {
		_, ok := start.Sub(gametime.Interval{Days: 2})
		assert.False(t, ok)
	})

	t.Run("SubRoundTrip", func(t *testing.T) {
		ivl := gametime.Interval{Hours: 3, Minutes: 15}
		fwd, ok := start.Add(ivl)
		require.True(t, ok)
		back, ok := fwd.Sub(ivl)
		require.True(t, ok)
		assert.Equal(t, start, back)
	})
}

func TestTimeDisplay(t *testing.T) {
	assert.Equal(t, "day 1 at 8:00:00 am", gametime.Start.DisplayLong())
	assert.Equal(t, "day 2 at 12:30:00 pm",
		gametime.Time{Day: 2, Hour: 12, Minute: 30}.DisplayLong())
	assert.Equal(t, "day 3 at 12:05:00 am",
		gametime.Time{Day: 3, Minute: 5}.DisplayLong())
	assert.Equal(t, "1-8:00:00", gametime.Start.DisplayShort())
}

func TestTimeSerialization(t *testing.T) {
	got, err := gametime.Parse(gametime.Start.String())
	require.NoError(t, err)
	assert.Equal(t, gametime.Start, got)

	_, err = gametime.Parse("bogus")
	assert.Error(t, err)
}
