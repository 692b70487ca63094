package period

import (
	"fmt"
	"strings"
	"time"

	"github.com/peepsched/schedval/pkg/eventspec"
	"github.com/peepsched/schedval/pkg/validator"
)

// Responses CSV column names.
const (
	colTimestamp       = "Timestamp"
	colPrimaryRole     = "Primary Role"
	colSecondaryRole   = "Secondary Role"
	colMaxSessions     = "Max Sessions"
	colAvailability    = "Availability"
	colMinIntervalDays = "Min Interval Days"
	colEventDuration   = "Event Duration"
)

const timestampLayout = "1/2/2006 15:04:05"

// ValidateResponses validates every response row and every companion event
// row independently, then runs list-level checks: email uniqueness,
// event-row start uniqueness, and — when event rows are present — the
// old-format requirement and the reconciliation of availability entries
// against the event rows that supply their durations.
func ValidateResponses(raw RawResponses, ctx validator.Context) (ResponsesFile, validator.Report) {
	file := validator.Loc(FileResponses)
	var report validator.Report

	parsed := make([]Response, len(raw.Responses))
	rowReports := make([]validator.Report, len(raw.Responses))
	for i, row := range raw.Responses {
		parsed[i], rowReports[i] = validateResponseRow(file.Index(i), row, ctx)
		report.Merge(rowReports[i])
	}

	eventRowsLoc := file.Field("event_rows")
	eventRows := make([]EventRow, len(raw.EventRows))
	eventRowReports := make([]validator.Report, len(raw.EventRows))
	for i, row := range raw.EventRows {
		eventRows[i], eventRowReports[i] = validateEventRow(eventRowsLoc.Index(i), row, ctx)
		report.Merge(eventRowReports[i])
	}

	emailOK := func(i int) bool {
		return !rowReports[i].HasAt(file.Index(i).Field(colEmail))
	}
	for _, g := range duplicateGroups(len(parsed), func(i int) (string, bool) {
		if parsed[i].Email == "" {
			return "", false
		}
		return validator.NormalizeEmailKey(parsed[i].Email), emailOK(i)
	}) {
		report.Add(uniquenessError(dupLoc(file, g, colEmail), "duplicate email", parsed[g[0]].Email))
	}

	startOK := func(i int) bool {
		return eventRowReports[i].Valid()
	}
	for _, g := range duplicateGroups(len(eventRows), func(i int) (time.Time, bool) {
		return eventRows[i].Start, startOK(i)
	}) {
		report.Add(uniquenessError(dupLoc(eventRowsLoc, g, colName),
			"duplicate event start", eventRows[g[0]].Name))
	}

	if len(raw.EventRows) > 0 {
		report.Merge(reconcileEventRows(file, parsed, rowReports, eventRows, eventRowReports))
	}

	var out ResponsesFile
	for i := range parsed {
		if rowReports[i].Valid() {
			out.Responses = append(out.Responses, parsed[i])
		}
	}
	for i := range eventRows {
		if eventRowReports[i].Valid() {
			out.EventRows = append(out.EventRows, eventRows[i])
		}
	}
	return out, report
}

func validateResponseRow(loc validator.Location, row Row, ctx validator.Context) (Response, validator.Report) {
	var report validator.Report
	var r Response

	if t, ok := validator.ParseDate(row[colTimestamp], ctx.TZ, timestampLayout); ok {
		r.Timestamp = t
	} else {
		report.Add(validator.ValidationError{
			Location: loc.Field(colTimestamp),
			Code:     validator.CodeParseError,
			Message:  fmt.Sprintf("Timestamp format not recognized: %s", row[colTimestamp]),
			Input:    row[colTimestamp],
		})
	}

	r.Name = strings.TrimSpace(row[colName])
	report.Merge(validator.Apply(validator.ValidPersonName(loc.Field(colName), r.Name)))

	r.DisplayName = strings.TrimSpace(row[colDisplayName])
	if r.DisplayName != "" {
		report.Merge(validator.Apply(validator.ValidPersonName(loc.Field(colDisplayName), r.DisplayName)))
	}

	r.Email = strings.TrimSpace(row[colEmail])
	report.Merge(validator.Apply(validator.ValidEmail(loc.Field(colEmail), r.Email)))

	if role, rep := parseRoleField(loc.Field(colPrimaryRole), row[colPrimaryRole]); rep.Valid() {
		r.PrimaryRole = role
	} else {
		report.Merge(rep)
	}

	if secondary := strings.TrimSpace(row[colSecondaryRole]); secondary != "" {
		if pref, ok := ParseSwitchPreference(secondary); ok {
			r.SwitchPref = pref
		} else {
			report.Add(validator.ValidationError{
				Location: loc.Field(colSecondaryRole),
				Code:     validator.CodeEnum,
				Message:  "unrecognized secondary role preference",
				Input:    row[colSecondaryRole],
			})
		}
	}

	if v, rep := parseBoundedInt(loc.Field(colMaxSessions), row[colMaxSessions], 0); rep.Valid() {
		r.MaxSessions = v
	} else {
		report.Merge(rep)
	}

	availability, availReport := parseAvailability(loc.Field(colAvailability), row[colAvailability], ctx)
	r.Availability = availability
	report.Merge(availReport)

	if v, rep := parseBoundedInt(loc.Field(colMinIntervalDays), row[colMinIntervalDays], 0); rep.Valid() {
		r.MinIntervalDays = v
	} else {
		report.Merge(rep)
	}

	return r, report
}

// parseAvailability accepts a comma-separated list of event strings, parses
// each entry, and checks that the entries are distinct and all use the same
// textual format. A blank value means no availability.
func parseAvailability(loc validator.Location, value string, ctx validator.Context) ([]eventspec.EventSpec, validator.Report) {
	var report validator.Report
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	var specs []eventspec.EventSpec
	for part := range strings.SplitSeq(value, ",") {
		spec, perr := eventspec.Parse(strings.TrimSpace(part), ctx)
		if perr != nil {
			report.Add(validator.ValidationError{
				Location: loc,
				Code:     perr.Code,
				Message:  perr.Message,
				Input:    perr.Input,
			})
			continue
		}
		specs = append(specs, spec)
	}

	for _, g := range duplicateGroups(len(specs), func(i int) (time.Time, bool) {
		return specs[i].Start, true
	}) {
		report.Add(uniquenessError(loc,
			fmt.Sprintf("duplicate events in %s", colAvailability), specs[g[0]].Raw))
	}

	mixed := false
	for i := 1; i < len(specs); i++ {
		if specs[i].Format != specs[0].Format {
			mixed = true
			break
		}
	}
	if mixed {
		report.Add(validator.ValidationError{
			Location: loc,
			Code:     validator.CodeFormatConsistency,
			Message:  "format must match in Availability: all events must use same format",
			Input:    value,
		})
	}

	return specs, report
}

func validateEventRow(loc validator.Location, row Row, ctx validator.Context) (EventRow, validator.Report) {
	var report validator.Report
	var er EventRow

	er.Name = strings.TrimSpace(row[colName])
	spec, perr := eventspec.Parse(er.Name, ctx)
	switch {
	case perr != nil:
		report.Add(validator.ValidationError{
			Location: loc.Field(colName),
			Code:     perr.Code,
			Message:  perr.Message,
			Input:    perr.Input,
		})
	case spec.Format == eventspec.FormatNew:
		report.Add(validator.ValidationError{
			Location: loc.Field(colName),
			Code:     validator.CodeFormatConsistency,
			Message:  "event rows must use the old format (no embedded duration)",
			Input:    er.Name,
		})
	default:
		er.Start = spec.Start
	}

	durLoc := loc.Field(colEventDuration)
	if v, rep := parsePositiveInt(durLoc, row[colEventDuration]); rep.Valid() {
		er.DurationMinutes = v
		report.Merge(validator.Apply(validator.AllowedDuration(durLoc, v, ctx)))
	} else {
		report.Merge(rep)
	}

	return er, report
}

// reconcileEventRows enforces the companion-record contract: when event rows
// exist, availability must use the old format and every availability entry
// must name an event the rows supply a duration for.
func reconcileEventRows(file validator.Location, parsed []Response, rowReports []validator.Report, eventRows []EventRow, eventRowReports []validator.Report) validator.Report {
	var report validator.Report

	starts := make(map[time.Time]bool, len(eventRows))
	for i := range eventRows {
		if eventRowReports[i].Valid() {
			starts[eventRows[i].Start] = true
		}
	}

	for i := range parsed {
		availLoc := file.Index(i).Field(colAvailability)
		if rowReports[i].HasAt(availLoc) {
			continue
		}
		for _, spec := range parsed[i].Availability {
			if spec.Format == eventspec.FormatNew {
				report.Add(validator.ValidationError{
					Location: availLoc,
					Code:     validator.CodeFormatConsistency,
					Message:  "availability must use old format when event rows exist",
					Input:    spec.Raw,
				})
			}
		}
	}

	for i := range parsed {
		availLoc := file.Index(i).Field(colAvailability)
		if rowReports[i].HasAt(availLoc) {
			continue
		}
		for _, spec := range parsed[i].Availability {
			if spec.Format == eventspec.FormatOld && !starts[spec.Start] {
				report.Add(validator.ValidationError{
					Location: availLoc,
					Code:     validator.CodeReferentialIntegrity,
					Message:  "availability includes event not in event rows",
					Input:    spec.Raw,
				})
			}
		}
	}

	return report
}
