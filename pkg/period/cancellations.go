package period

import (
	"time"

	"github.com/peepsched/schedval/pkg/eventspec"
	"github.com/peepsched/schedval/pkg/validator"
)

// ValidateCancellations validates the cancelled-events list and every
// cancelled-availability entry independently, then checks that no email
// appears in more than one entry. A nil input (file absent) is valid and
// yields empty data.
func ValidateCancellations(raw *RawCancellations, ctx validator.Context) (Cancellations, validator.Report) {
	if raw == nil {
		return Cancellations{}, nil
	}

	file := validator.Loc(FileCancellations)
	var report validator.Report
	var out Cancellations

	eventsLoc := file.Field("cancelled_events")
	specs, specReport := parseEventList(eventsLoc, raw.CancelledEvents, ctx)
	report.Merge(specReport)
	out.CancelledEvents = specs

	availLoc := file.Field("cancelled_availability")
	entries := make([]CancelledAvailability, len(raw.CancelledAvailability))
	entryReports := make([]validator.Report, len(raw.CancelledAvailability))
	for i, entry := range raw.CancelledAvailability {
		loc := availLoc.Index(i)
		var rep validator.Report
		var ca CancelledAvailability

		ca.Email = entry.Email
		rep.Merge(validator.Apply(validator.ValidEmail(loc.Field("email"), entry.Email)))

		events, eventsReport := parseEventList(loc.Field("events"), entry.Events, ctx)
		ca.Events = events
		rep.Merge(eventsReport)

		entries[i] = ca
		entryReports[i] = rep
		report.Merge(rep)
	}

	emailOK := func(i int) bool {
		return !entryReports[i].HasAt(availLoc.Index(i).Field("email"))
	}
	for _, g := range duplicateGroups(len(entries), func(i int) (string, bool) {
		return validator.NormalizeEmailKey(entries[i].Email), emailOK(i)
	}) {
		report.Add(uniquenessError(dupLoc(availLoc, g, "email"),
			"duplicate email in cancelled availability", entries[g[0]].Email))
	}

	for i := range entries {
		if entryReports[i].Valid() {
			out.CancelledAvailability = append(out.CancelledAvailability, entries[i])
		}
	}
	return out, report
}

// parseEventList parses a list of event strings, reporting every entry that
// fails and any duplicated start among those that parse.
func parseEventList(loc validator.Location, raws []string, ctx validator.Context) ([]eventspec.EventSpec, validator.Report) {
	var report validator.Report
	var specs []eventspec.EventSpec
	for i, raw := range raws {
		spec, perr := eventspec.Parse(raw, ctx)
		if perr != nil {
			report.Add(validator.ValidationError{
				Location: loc.Index(i),
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
		report.Add(uniquenessError(loc, "duplicate event start", specs[g[0]].Raw))
	}
	return specs, report
}
