// Package datetime provides date and time utility functions.
package datetime

import (
	"strings"
	"time"

	"github.com/iwvelando/quote-engine/pkg/constants"
)

const (
	// DateLayout is the format expected for dates of birth.
	DateLayout = constants.DateLayout
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseDate accepts either a calendar date (2006-01-02) or a full RFC 3339
// timestamp, as produced by date pickers.
func ParseDate(date string) (time.Time, error) {
	trimmed := strings.TrimSpace(date)
	if t, err := time.Parse(DateLayout, trimmed); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, trimmed)
}

// YearsBetween returns the difference in calendar years between two dates,
// ignoring month and day.
func YearsBetween(from, to time.Time) int {
	return to.Year() - from.Year()
}

// DateAfterDate returns true if firstDate is strictly after secondDate.
func DateAfterDate(firstDate, secondDate time.Time) bool {
	return firstDate.After(secondDate)
}
