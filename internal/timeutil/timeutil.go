package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout defines the canonical date format (YYYY-MM-DD).
	DateLayout = "2006-01-02"
	// ClockLayout is the short kickoff time shown on match cards.
	ClockLayout = "15:04"
	// ShortDateLayout is the compact date shown in head-to-head history ("19 Mar 23").
	ShortDateLayout = "02 Jan 06"
	// DayMonthLayout is used by the date strip ("31 Oct").
	DayMonthLayout = "02 Jan"
)

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatClock renders t as HH:MM in loc. Zero times render as an empty string.
func FormatClock(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(orUTC(loc)).Format(ClockLayout)
}

// FormatShortDate renders t as "02 Jan 06" in loc. Zero times render as an empty string.
func FormatShortDate(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(orUTC(loc)).Format(ShortDateLayout)
}

// ParseInstant parses an upstream RFC3339 timestamp, returning the zero time when absent or malformed.
func ParseInstant(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

// SameDay reports whether instant t falls on the calendar day (YYYY-MM-DD) in loc.
func SameDay(t time.Time, date string, loc *time.Location) bool {
	if t.IsZero() {
		return false
	}
	return t.In(orUTC(loc)).Format(DateLayout) == date
}

// StartOfDay truncates t to midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(orUTC(loc))
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}

// LoadLocation resolves an IANA zone name. Blank names mean UTC.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return loc, nil
}

func orUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
