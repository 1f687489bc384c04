package gtfs

import (
	"fmt"
	"strings"
	"time"
)

// ServiceDate is one calendar date in the feed's local zone.
type ServiceDate struct {
	t time.Time
}

// ParseServiceDate parses a YYYY-MM-DD date string.
func ParseServiceDate(s string) (ServiceDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return ServiceDate{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return ServiceDate{t: t}, nil
}

// Today returns the current local date.
func Today() ServiceDate {
	return ServiceDate{t: time.Now()}
}

// Compact returns the date in the feed's fixed-width YYYYMMDD encoding.
// Dates in this form compare correctly as plain strings.
func (d ServiceDate) Compact() string { return d.t.Format("20060102") }

// Display returns the date as DD/MM/YYYY for titles and error messages.
func (d ServiceDate) Display() string { return d.t.Format("02/01/2006") }

// WeekdayName returns the lowercase weekday column name used by calendar.txt
// (monday..sunday). Go's week starts on Sunday, matching the feed convention.
func (d ServiceDate) WeekdayName() string {
	return strings.ToLower(d.t.Weekday().String())
}
