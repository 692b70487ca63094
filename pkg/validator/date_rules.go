package validator

import (
	"strings"
	"time"
)

// ParseDate parses value strictly against the given layouts, trying each in
// order. Any deviation is a failure, never a best-effort guess. tz applies
// to layouts without a zone; nil falls back to UTC.
func ParseDate(value string, tz *time.Location, layouts ...string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if tz == nil {
		tz = time.UTC
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, tz); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
