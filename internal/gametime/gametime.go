// Package gametime tracks the in-game clock: a day counter and a time
// of day, advanced and rewound by intervals such as "1d" or "30m".
package gametime

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// secondsPerRound is the length of a combat round.
const secondsPerRound = 6

// Time is a point on the in-game clock. Days start at 1; a fresh world
// begins on day 1 at 8:00 am.
type Time struct {
	Day    int
	Hour   int
	Minute int
	Second int
}

// Start is the clock of a fresh world.
var Start = Time{Day: 1, Hour: 8}

// Interval is a signed span of game time.
type Interval struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
	Rounds  int
}

// ParseInterval parses an interval such as "1d", "2h30m", or "3r".
// Units are d (days), h (hours), m (minutes), s (seconds), and
// r (rounds). A bare number is a number of days.
func ParseInterval(s string) (Interval, error) {
	var ivl Interval
	if s == "" {
		return ivl, fmt.Errorf("empty interval")
	}

	rest := s
	for rest != "" {
		digits := 0
		for digits < len(rest) && unicode.IsDigit(rune(rest[digits])) {
			digits++
		}
		if digits == 0 {
			return Interval{}, fmt.Errorf("invalid interval %q", s)
		}

		n, err := strconv.Atoi(rest[:digits])
		if err != nil {
			return Interval{}, fmt.Errorf("invalid interval %q: %w", s, err)
		}
		rest = rest[digits:]

		if rest == "" {
			ivl.Days += n
			break
		}

		switch rest[0] {
		case 'd':
			ivl.Days += n
		case 'h':
			ivl.Hours += n
		case 'm':
			ivl.Minutes += n
		case 's':
			ivl.Seconds += n
		case 'r':
			ivl.Rounds += n
		default:
			return Interval{}, fmt.Errorf("unknown unit %q in interval %q", rest[:1], s)
		}
		rest = rest[1:]
	}

	return ivl, nil
}

// DisplayLong spells the interval out in words, eg. "1 day, 2 hours".
func (i Interval) DisplayLong() string {
	var parts []string
	add := func(n int, unit string) {
		if n == 0 {
			return
		}
		if n == 1 {
			parts = append(parts, fmt.Sprintf("1 %s", unit))
		} else {
			parts = append(parts, fmt.Sprintf("%d %ss", n, unit))
		}
	}

	add(i.Days, "day")
	add(i.Hours, "hour")
	add(i.Minutes, "minute")
	add(i.Seconds, "second")
	add(i.Rounds, "round")

	if len(parts) == 0 {
		return "no time"
	}
	return strings.Join(parts, ", ")
}

func (i Interval) seconds() int {
	return ((i.Days*24+i.Hours)*60+i.Minutes)*60 + i.Seconds + i.Rounds*secondsPerRound
}

// Add advances the clock by the interval. It reports failure if the
// result would be before day 1.
func (t Time) Add(i Interval) (Time, bool) {
	total := t.seconds() + i.seconds()
	if total < 0 {
		return Time{}, false
	}
	return fromSeconds(total), true
}

// Sub rewinds the clock by the interval.
func (t Time) Sub(i Interval) (Time, bool) {
	return t.Add(Interval{Seconds: -i.seconds()})
}

func (t Time) seconds() int {
	return (((t.Day-1)*24+t.Hour)*60+t.Minute)*60 + t.Second
}

func fromSeconds(total int) Time {
	return Time{
		Day:    total/86400 + 1,
		Hour:   total / 3600 % 24,
		Minute: total / 60 % 60,
		Second: total % 60,
	}
}

// DisplayLong renders the time for prose, eg. "day 1 at 8:00:00 am".
func (t Time) DisplayLong() string {
	hour, meridiem := t.Hour, "am"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		meridiem = "pm"
	case hour > 12:
		hour -= 12
		meridiem = "pm"
	}
	return fmt.Sprintf("day %d at %d:%02d:%02d %s", t.Day, hour, t.Minute, t.Second, meridiem)
}

// DisplayShort renders the time compactly, eg. "1-8:00:00".
func (t Time) DisplayShort() string {
	return fmt.Sprintf("%d-%d:%02d:%02d", t.Day, t.Hour, t.Minute, t.Second)
}

// String serializes the time for the key-value store.
func (t Time) String() string {
	return fmt.Sprintf("%d-%d-%d-%d", t.Day, t.Hour, t.Minute, t.Second)
}

// Parse restores a time serialized with String.
func Parse(s string) (Time, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 4 {
		return Time{}, fmt.Errorf("invalid time %q", s)
	}

	var ns [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Time{}, fmt.Errorf("invalid time %q: %w", s, err)
		}
		ns[i] = n
	}
	return Time{Day: ns[0], Hour: ns[1], Minute: ns[2], Second: ns[3]}, nil
}
