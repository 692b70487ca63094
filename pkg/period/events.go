package period

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/peepsched/schedval/pkg/validator"
)

// eventDateLayout is the fixed pattern of attendance/results date fields.
const eventDateLayout = "2006-01-02 15:04"

// validateEventFile is the shared body of the attendance and results
// validators; withAlternates switches the result-only checks on.
func validateEventFile(fileName string, raw *RawEvents, ctx validator.Context, withAlternates bool) ([]ResultEvent, validator.Report) {
	if raw == nil {
		return nil, nil
	}

	file := validator.Loc(fileName).Field("valid_events")
	var report validator.Report

	parsed := make([]ResultEvent, len(raw.ValidEvents))
	eventReports := make([]validator.Report, len(raw.ValidEvents))
	for i, rawEvent := range raw.ValidEvents {
		parsed[i], eventReports[i] = validateEvent(file.Index(i), rawEvent, ctx, withAlternates)
		report.Merge(eventReports[i])
	}

	fieldOK := func(i int, field string) bool {
		return !eventReports[i].HasAt(file.Index(i).Field(field))
	}
	for _, g := range duplicateGroups(len(parsed), func(i int) (time.Time, bool) {
		return parsed[i].Start, fieldOK(i, "date")
	}) {
		report.Add(uniquenessError(dupLoc(file, g, "date"),
			"duplicate event start", raw.ValidEvents[g[0]].Date))
	}
	for _, g := range duplicateGroups(len(parsed), func(i int) (int, bool) {
		return parsed[i].ID, fieldOK(i, "id")
	}) {
		report.Add(uniquenessError(dupLoc(file, g, "id"),
			fmt.Sprintf("duplicate event id: %d", parsed[g[0]].ID),
			strconv.Itoa(parsed[g[0]].ID)))
	}

	var out []ResultEvent
	for i := range parsed {
		if eventReports[i].Valid() {
			out = append(out, parsed[i])
		}
	}
	return out, report
}

func validateEvent(loc validator.Location, raw RawEvent, ctx validator.Context, withAlternates bool) (ResultEvent, validator.Report) {
	var report validator.Report
	var ev ResultEvent

	ev.ID = raw.ID
	report.Merge(validator.Apply(validator.MinInt(loc.Field("id"), raw.ID, 0)))

	if t, ok := validator.ParseDate(raw.Date, ctx.TZ, eventDateLayout); ok {
		ev.Start = t
	} else {
		report.Add(validator.ValidationError{
			Location: loc.Field("date"),
			Code:     validator.CodeParseError,
			Message:  fmt.Sprintf("invalid event datetime: %s", raw.Date),
			Input:    raw.Date,
		})
	}

	durLoc := loc.Field("duration_minutes")
	ev.DurationMinutes = raw.DurationMinutes
	durReport := validator.Apply(validator.PositiveInt(durLoc, raw.DurationMinutes))
	if durReport.Valid() {
		durReport = validator.Apply(validator.AllowedDuration(durLoc, raw.DurationMinutes, ctx))
	}
	report.Merge(durReport)

	attLoc := loc.Field("attendees")
	if len(raw.Attendees) == 0 {
		report.Add(validator.ValidationError{
			Location: attLoc,
			Code:     validator.CodeRange,
			Message:  "attendees must not be empty",
		})
	}
	ev.Attendees = validateRoster(attLoc, raw.Attendees, &report)

	if !withAlternates {
		return ev, report
	}

	altLoc := loc.Field("alternates")
	ev.Alternates = validateRoster(altLoc, raw.Alternates, &report)

	attendeeIDs := make(map[int]bool, len(ev.Attendees))
	for _, entry := range ev.Attendees {
		attendeeIDs[entry.ID] = true
	}
	var overlap []int
	for _, entry := range ev.Alternates {
		if attendeeIDs[entry.ID] {
			overlap = append(overlap, entry.ID)
		}
	}
	if len(overlap) > 0 {
		sort.Ints(overlap)
		report.Add(validator.ValidationError{
			Location: altLoc,
			Code:     validator.CodeOverlap,
			Message:  fmt.Sprintf("attendees and alternates overlap: %v", overlap),
		})
	}

	return ev, report
}

// validateRoster checks each roster entry and flags duplicated ids; the
// typed entries are returned even when some fail so overlap detection can
// still see them.
func validateRoster(loc validator.Location, raws []RawRosterEntry, report *validator.Report) []RosterEntry {
	entries := make([]RosterEntry, 0, len(raws))
	for i, raw := range raws {
		entryLoc := loc.Index(i)
		entry := RosterEntry{ID: raw.ID, Name: strings.TrimSpace(raw.Name)}

		report.Merge(validator.Apply(
			validator.PositiveInt(entryLoc.Field("id"), raw.ID),
			validator.ValidPersonName(entryLoc.Field("name"), entry.Name),
		))
		if role, rep := parseRoleField(entryLoc.Field("role"), raw.Role); rep.Valid() {
			entry.Role = role
		} else {
			report.Merge(rep)
		}

		entries = append(entries, entry)
	}

	for _, g := range duplicateGroups(len(entries), func(i int) (int, bool) {
		return entries[i].ID, entries[i].ID > 0
	}) {
		report.Add(uniquenessError(dupLoc(loc, g, "id"),
			fmt.Sprintf("duplicate roster id: %d", entries[g[0]].ID),
			strconv.Itoa(entries[g[0]].ID)))
	}

	return entries
}
