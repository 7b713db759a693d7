package entity

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

const DateLayout = time.DateOnly

var canonicalDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Layouts the record store is known to emit. Slash dates are month first.
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateTime,
	"1/2/2006",
	"1/2/2006 15:04:05",
}

var ErrInvalidDate = errors.New("invalid date")

func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, ErrInvalidDate
}

// NormalizeDate renders s as YYYY-MM-DD. Canonical input passes through,
// anything unparseable becomes "".
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if canonicalDate.MatchString(s) {
		return s
	}

	t, err := ParseDate(s)
	if err != nil {
		return ""
	}

	return t.Format(DateLayout)
}

func Today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
