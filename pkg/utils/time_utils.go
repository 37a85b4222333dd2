package utils

import (
	"fmt"
	"strings"
	"time"
)

const (
	CalendarDateLayout = "2006-01-02"
	ClockLayout        = "15:04"
)

// ParseCalendarDate accepts a bare calendar date ("2024-06-15"), read as
// midnight UTC, or an RFC 3339 timestamp, which keeps its own offset so
// callers format it in the zone it was written in.
func ParseCalendarDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(CalendarDateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// SameCalendarDay compares the calendar dates of a and b, each in its own zone.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// CalendarDay truncates t to midnight UTC of its own calendar date.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseClock parses "HH:MM" into an offset from midnight.
func ParseClock(s string) (time.Duration, error) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: start time %q", ErrInvalidInput, s)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// Format helpers, en-US style.
func FormatShortDate(t time.Time) string { return t.Format("Jan 2") }
func FormatMonthYear(t time.Time) string { return t.Format("January 2006") }
func FormatLongDate(t time.Time) string  { return t.Format("January 2, 2006") }
func FormatWeekday(t time.Time) string   { return t.Format("Monday") }
