package core

import (
	"strings"
	"time"
)

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// MondayIndex converts Go's weekday (Sunday=0) to the Monday=0..Sunday=6
// index that all weekly bookkeeping here is expressed in.
func MondayIndex(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return wd - 1
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart returns the Monday on or before t, at midnight.
func WeekStart(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -MondayIndex(t))
}
