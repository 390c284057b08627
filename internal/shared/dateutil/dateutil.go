// Package dateutil parses and formats the date and timestamp strings used in
// request and response bodies.
package dateutil

import (
	"strings"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = time.RFC3339
)

// ParseDate accepts YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// ParseDateOr returns fallback when s is blank.
func ParseDateOr(s string, fallback time.Time) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return fallback, nil
	}
	return ParseDate(s)
}

// ParseDateTime accepts RFC 3339 timestamps.
func ParseDateTime(s string) (time.Time, error) {
	return time.Parse(DateTimeLayout, strings.TrimSpace(s))
}

// ParseOptionalDateTime returns nil for a nil or blank value.
func ParseOptionalDateTime(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := ParseDateTime(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// DateOf is the calendar day of t in t's own offset, as a UTC midnight.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today is the current UTC date at midnight.
func Today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// FormatOptional formats t with layout, or returns nil.
func FormatOptional(t *time.Time, layout string) *string {
	if t == nil {
		return nil
	}
	s := t.Format(layout)
	return &s
}
