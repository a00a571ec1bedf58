package domain

import (
	"regexp"
	"time"
)

const isoDate = "2006-01-02"

var relativeDate = regexp.MustCompile(`^(today|yesterday|[0-9]+daysAgo)$`)

// ValidDate reports whether s is accepted by the Data API date grammar:
// YYYY-MM-DD, "today", "yesterday" or "NdaysAgo".
func ValidDate(s string) bool {
	if relativeDate.MatchString(s) {
		return true
	}
	_, err := time.Parse(isoDate, s)
	return err == nil
}

// OrderedRange reports false only when both ends are ISO dates and start
// falls after end. Relative keywords are resolved by the service.
func OrderedRange(start, end string) bool {
	s, err := time.Parse(isoDate, start)
	if err != nil {
		return true
	}
	e, err := time.Parse(isoDate, end)
	if err != nil {
		return true
	}
	return !s.After(e)
}
