package service

import (
	"time"

	"skillswap-be/internal/apperr"
)

// Accepted datetime layouts, most specific first. Values without an offset
// are interpreted as UTC.
var scheduleLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseScheduleTime(value string) (time.Time, error) {
	for _, layout := range scheduleLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, apperr.Validation("invalid datetime format: " + value)
}
