package utils

import (
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutLongDate = "Monday, January 2, 2006"
)

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// FormatLongDate renders a YYYY-MM-DD string as "Tuesday, October 20, 2026".
// Unparseable input is returned unchanged.
func FormatLongDate(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format(layoutLongDate)
}
