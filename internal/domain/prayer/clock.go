// Package prayer builds the daily prayer schedule from sun events and picks
// the prayer currently in effect.
package prayer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 24 * secondsPerHour
	microsPerSecond  = 1e6
)

// TimeOfDay is a wall clock time as seconds since local midnight, always in
// [0, 86400).
type TimeOfDay int32

// NewTimeOfDay builds a TimeOfDay, wrapping values outside a single day.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return wrapSeconds(int64(hour)*secondsPerHour + int64(minute)*secondsPerMinute + int64(second))
}

// FromHours converts fractional hours to a TimeOfDay. The value is resolved
// to the microsecond, sub-second remainders are dropped, and the result is
// wrapped modulo 24h.
func FromHours(hours float64) TimeOfDay {
	return wrapSeconds(unwrappedSeconds(hours))
}

func unwrappedSeconds(hours float64) int64 {
	micros := math.Round(hours * secondsPerHour * microsPerSecond)
	return int64(math.Floor(micros / microsPerSecond))
}

func wrapSeconds(s int64) TimeOfDay {
	s %= secondsPerDay
	if s < 0 {
		s += secondsPerDay
	}
	return TimeOfDay(s)
}

func (t TimeOfDay) Hour() int   { return int(t) / secondsPerHour }
func (t TimeOfDay) Minute() int { return int(t) % secondsPerHour / secondsPerMinute }
func (t TimeOfDay) Second() int { return int(t) % secondsPerMinute }

// String renders the 24-hour form HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Meridiem holds the markers appended to 12-hour clock values.
type Meridiem struct {
	AM string
	PM string
}

var (
	// KurdishMeridiem uses the Sorani abbreviations for before and after noon.
	KurdishMeridiem = Meridiem{AM: "ب.ن", PM: "د.ن"}
	// EnglishMeridiem uses AM and PM.
	EnglishMeridiem = Meridiem{AM: "AM", PM: "PM"}
)

// Format12 renders t as a zero-padded 12-hour clock value, e.g. "05:07 د.ن".
func (t TimeOfDay) Format12(m Meridiem) string {
	h := t.Hour()
	marker := m.AM
	if h >= 12 {
		marker = m.PM
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%02d:%02d %s", h, t.Minute(), marker)
}

// ParseClock parses "hh:mm <marker>" using the markers of m (English AM/PM
// is always accepted too) or, without a marker, a 24-hour "HH:MM".
func ParseClock(s string, m Meridiem) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	clock, marker, hasMarker := strings.Cut(s, " ")

	hs, ms, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	hour, err := strconv.Atoi(hs)
	if err != nil {
		return 0, fmt.Errorf("%w: hour in %q", ErrInvalidClock, s)
	}
	minute, err := strconv.Atoi(ms)
	if err != nil || len(ms) != 2 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: minute in %q", ErrInvalidClock, s)
	}

	if !hasMarker {
		if hour < 0 || hour > 23 {
			return 0, fmt.Errorf("%w: hour in %q", ErrInvalidClock, s)
		}
		return NewTimeOfDay(hour, minute, 0), nil
	}

	if hour < 1 || hour > 12 {
		return 0, fmt.Errorf("%w: 12-hour clock hour in %q", ErrInvalidClock, s)
	}
	hour %= 12
	switch marker = strings.TrimSpace(marker); {
	case marker == m.AM || strings.EqualFold(marker, EnglishMeridiem.AM):
	case marker == m.PM || strings.EqualFold(marker, EnglishMeridiem.PM):
		hour += 12
	default:
		return 0, fmt.Errorf("%w: unknown marker %q", ErrInvalidClock, marker)
	}
	return NewTimeOfDay(hour, minute, 0), nil
}
