package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format used in query strings and booking ranges.
const DateLayout = "2006-01-02"

// naiveLayouts are the local-naive forms the backend emits. Fractional seconds are
// accepted by time.Parse without being spelled out in the layout.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ParseTimestamp parses an ISO 8601 timestamp. Timestamps without an offset are read in loc.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("parse timestamp: empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse timestamp %q", s)
}

// ParseDate parses a YYYY-MM-DD calendar date at midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
}

// NaiveTimestamp formats date + time of day the way reservations/create/ expects it.
func NaiveTimestamp(date string, t TimeOfDay) string {
	return fmt.Sprintf("%sT%s:00", date, t)
}
