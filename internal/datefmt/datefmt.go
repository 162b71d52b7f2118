// Package datefmt parses and formats the plain YYYY-MM-DD dates the CMS
// delivers. Dates are always anchored at local midnight in the caller's
// location so a date-only string never shifts by a day when read as UTC.
package datefmt

import (
	"fmt"
	"strings"
	"time"
)

const (
	Layout     = "2006-01-02"
	LongLayout = "Monday, January 2, 2006"
)

// Parse returns local midnight of s in loc. A full ISO timestamp is accepted
// and truncated to its date part.
func Parse(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	if len(s) > len(Layout) && s[len(Layout)] == 'T' {
		s = s[:len(Layout)]
	}
	t, err := time.ParseInLocation(Layout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

func Long(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(LongLayout)
}

// LongString formats s in the long form, or returns "" when s is not a date.
func LongString(s string, loc *time.Location) string {
	t, err := Parse(s, loc)
	if err != nil {
		return ""
	}
	return Long(t)
}

// StartOfDay and EndOfDay bound the calendar day of t in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func EndOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, loc)
}
