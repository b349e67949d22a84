package attendance

import (
	"fmt"
	"math"

	"github.com/aliHasanov22/holb-st-m/core"
)

// Office hours; only the part of a stay inside this window counts.
var (
	OpeningTime = ClockTime{Hour: 8}
	ClosingTime = ClockTime{Hour: 18}
)

// ClockTime is a wall-clock time of day with minute precision.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses a zero-padded 24-hour "HH:MM" string. Anything else
// is a validation error; it never defaults.
func ParseClockTime(s string) (ClockTime, error) {
	if !core.IsClockTime(s) {
		return ClockTime{}, core.NewValidationError(fmt.Errorf("malformed time %q; want HH:MM", s))
	}
	var t ClockTime
	// the regex guarantees two zero-padded fields
	if _, err := fmt.Sscanf(s, "%02d:%02d", &t.Hour, &t.Minute); err != nil {
		return ClockTime{}, core.NewValidationError(err)
	}
	return t, nil
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// TotalMinutes returns minutes elapsed since midnight.
func (t ClockTime) TotalMinutes() int {
	return t.Hour*60 + t.Minute
}

func (t ClockTime) Before(u ClockTime) bool {
	return t.TotalMinutes() < u.TotalMinutes()
}

func maxTime(a, b ClockTime) ClockTime {
	if a.Before(b) {
		return b
	}
	return a
}

func minTime(a, b ClockTime) ClockTime {
	if b.Before(a) {
		return b
	}
	return a
}

// ValidHours returns the length in hours of the [entry, exit] interval
// clipped to office hours (08:00-18:00), rounded to 2 decimal places.
// Empty or inverted intervals after clamping yield 0; midnight-crossing
// input is not supported (entry must not be after exit on the same clock
// face). Halves round up: 7.5 minutes past the hour is 0.13, not 0.12.
func ValidHours(entry, exit ClockTime) float64 {
	effectiveEntry := maxTime(entry, OpeningTime)
	effectiveExit := minTime(exit, ClosingTime)

	if !effectiveEntry.Before(effectiveExit) {
		return 0.0
	}
	span := effectiveExit.TotalMinutes() - effectiveEntry.TotalMinutes()
	return Round2(float64(span) / 60)
}

// Round2 rounds to 2 decimal places, halves up.
func Round2(hours float64) float64 {
	return math.Floor(hours*100+0.5) / 100
}
