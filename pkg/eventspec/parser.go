package eventspec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/peepsched/schedval/pkg/validator"
)

// Format tags which of the two mutually exclusive textual formats an event
// string used.
type Format string

const (
	// FormatOld is a date plus start time with no embedded duration; the
	// duration is resolved later from a companion event row.
	FormatOld Format = "old"
	// FormatNew embeds the duration as a " to <end time>" suffix.
	FormatNew Format = "new"
)

// EventSpec is the normalized result of parsing an event string.
type EventSpec struct {
	Start time.Time
	// DurationMinutes is meaningful only for FormatNew; old-format specs
	// leave the duration unresolved.
	DurationMinutes int
	Format          Format
	Raw             string
}

// End returns the event end time when the duration is known.
func (e EventSpec) End() (time.Time, bool) {
	if e.Format != FormatNew {
		return time.Time{}, false
	}
	return e.Start.Add(time.Duration(e.DurationMinutes) * time.Minute), true
}

// ParseError describes why an event string could not be parsed.
type ParseError struct {
	Code    validator.Code
	Message string
	Input   string
}

func (e *ParseError) Error() string {
	return e.Message
}

var (
	ordinalRe = regexp.MustCompile(`(\d)(st|nd|rd|th)\b`)
	startRe   = regexp.MustCompile(`^([a-z]+) ([a-z]+) (\d{1,2}) - (\d{1,2})(?::(\d{2}))?(am|pm)$`)
	endRe     = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?(am|pm)$`)
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var months = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

var titleCaser = cases.Title(language.English)

// Parse turns one raw event string into a normalized EventSpec or a single
// ParseError. The grammar is
//
//	<Weekday> <Month> <day>[st|nd|rd|th] - <h>[:mm]<am|pm>[ to <h>[:mm]<am|pm>]
//
// matched case-insensitively. The " to <end>" suffix marks the new format
// and embeds the duration as end minus start; without it the spec is
// old-format and its duration stays unresolved. The year comes from ctx,
// the zone from ctx.TZ. Parse is pure: the same input and context always
// yield the same result.
func Parse(raw string, ctx validator.Context) (EventSpec, *ParseError) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return EventSpec{}, &ParseError{
			Code:    validator.CodeParseError,
			Message: `invalid event name: ""`,
			Input:   raw,
		}
	}
	name = ordinalRe.ReplaceAllString(name, "$1")

	startPart, endPart, hasEnd := strings.Cut(name, " to ")

	m := startRe.FindStringSubmatch(strings.TrimSpace(startPart))
	if m == nil {
		return EventSpec{}, unparseable(raw)
	}

	weekday, ok := weekdays[m[1]]
	if !ok {
		return EventSpec{}, unparseable(raw)
	}
	month, ok := months[m[2]]
	if !ok {
		return EventSpec{}, unparseable(raw)
	}
	day, _ := strconv.Atoi(m[3])

	hour, minute, ok := clockTime(m[4], m[5], m[6])
	if !ok {
		return EventSpec{}, unparseable(raw)
	}

	tz := ctx.TZ
	if tz == nil {
		tz = time.UTC
	}
	start := time.Date(ctx.Year, month, day, hour, minute, 0, 0, tz)
	if start.Month() != month || start.Day() != day {
		return EventSpec{}, &ParseError{
			Code:    validator.CodeInvalidCalendarDate,
			Message: fmt.Sprintf("invalid calendar date: %s %d, %d", titleCaser.String(m[2]), day, ctx.Year),
			Input:   raw,
		}
	}
	if start.Weekday() != weekday {
		return EventSpec{}, &ParseError{
			Code: validator.CodeWeekdayMismatch,
			Message: fmt.Sprintf("weekday does not match date: expected %s, got %s",
				start.Weekday(), titleCaser.String(m[1])),
			Input: raw,
		}
	}

	spec := EventSpec{Start: start, Format: FormatOld, Raw: raw}
	if !hasEnd {
		return spec, nil
	}

	em := endRe.FindStringSubmatch(strings.TrimSpace(endPart))
	if em == nil {
		return EventSpec{}, &ParseError{
			Code:    validator.CodeParseError,
			Message: fmt.Sprintf("invalid event end time: %s", raw),
			Input:   raw,
		}
	}
	endHour, endMinute, ok := clockTime(em[1], em[2], em[3])
	if !ok {
		return EventSpec{}, &ParseError{
			Code:    validator.CodeParseError,
			Message: fmt.Sprintf("invalid event end time: %s", raw),
			Input:   raw,
		}
	}
	end := time.Date(ctx.Year, month, day, endHour, endMinute, 0, 0, tz)
	if !end.After(start) {
		// Overnight ranges are unsupported: an end at or before the start
		// is rejected rather than read as next-day.
		return EventSpec{}, &ParseError{
			Code:    validator.CodeInvalidTimeRange,
			Message: "end time must be after start time",
			Input:   raw,
		}
	}

	duration := int(end.Sub(start).Minutes())
	if !ctx.DurationAllowed(duration) {
		return EventSpec{}, &ParseError{
			Code:    validator.CodeInvalidDuration,
			Message: fmt.Sprintf("unsupported event duration: %d (allowed: %v)", duration, ctx.ClassDurations),
			Input:   raw,
		}
	}

	spec.DurationMinutes = duration
	spec.Format = FormatNew
	return spec, nil
}

// clockTime converts a matched 12-hour time into 24-hour components.
func clockTime(hourStr, minuteStr, meridiem string) (hour, minute int, ok bool) {
	hour, _ = strconv.Atoi(hourStr)
	if hour < 1 || hour > 12 {
		return 0, 0, false
	}
	if minuteStr != "" {
		minute, _ = strconv.Atoi(minuteStr)
		if minute > 59 {
			return 0, 0, false
		}
	}
	if hour == 12 {
		hour = 0
	}
	if meridiem == "pm" {
		hour += 12
	}
	return hour, minute, true
}

func unparseable(raw string) *ParseError {
	return &ParseError{
		Code:    validator.CodeParseError,
		Message: fmt.Sprintf("invalid event name: %s", raw),
		Input:   raw,
	}
}
