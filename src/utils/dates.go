package utils

import (
	"fmt"
	"time"
)

const ShortDashDateLayout = "2006-01-02"

// ParseShortDate parses a YYYY-MM-DD string, the only date format accepted
// from clients and from AI-extracted results.
func ParseShortDate(value string) (time.Time, error) {
	t, err := time.Parse(ShortDashDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

// IsValidShortDate reports whether value is a well-formed YYYY-MM-DD date.
func IsValidShortDate(value string) bool {
	_, err := time.Parse(ShortDashDateLayout, value)
	return err == nil
}
