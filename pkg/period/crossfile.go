package period

import (
	"fmt"
	"time"

	"github.com/peepsched/schedval/pkg/validator"
)

// Options configures a period validation run.
type Options struct {
	// SkipPartialFiles excludes a file from cross-file checks entirely when
	// that file produced structural errors of its own. The default runs
	// cross-file checks against the file's valid subset.
	SkipPartialFiles bool
}

// validateCrossFile runs the referential-integrity checks after every file
// validator has finished. partial records which files produced structural
// errors; whether those files still participate depends on opts. Errors are
// appended in referencing-file declaration order.
func validateCrossFile(data Data, partial map[string]bool, _ validator.Context, opts Options) validator.Report {
	var report validator.Report

	include := func(file string) bool {
		return !opts.SkipPartialFiles || !partial[file]
	}
	if !include(FileMembers) {
		// Nothing to reference against.
		return nil
	}

	memberByID := make(map[int]Member, len(data.Members))
	memberEmails := make(map[string]bool, len(data.Members))
	for _, m := range data.Members {
		memberByID[m.ID] = m
		if m.Email != "" {
			memberEmails[validator.NormalizeEmailKey(m.Email)] = true
		}
	}

	availabilityByEmail := make(map[string]map[time.Time]bool, len(data.Responses.Responses))
	eventStarts := make(map[time.Time]bool)
	if include(FileResponses) {
		loc := validator.Loc(FileResponses).Field(colEmail)
		seen := make(map[string]bool)
		for _, r := range data.Responses.Responses {
			key := validator.NormalizeEmailKey(r.Email)
			starts := make(map[time.Time]bool, len(r.Availability))
			for _, spec := range r.Availability {
				starts[spec.Start] = true
			}
			availabilityByEmail[key] = starts

			if !memberEmails[key] && !seen[key] {
				seen[key] = true
				report.Add(validator.ValidationError{
					Location: loc,
					Code:     validator.CodeReferentialIntegrity,
					Message:  fmt.Sprintf("response email not found among members: %s", r.Email),
					Input:    r.Email,
				})
			}
		}
		for _, ev := range data.Responses.Events() {
			eventStarts[ev.Start] = true
		}
	}

	if include(FileCancellations) && include(FileResponses) {
		report.Merge(checkCancellations(data.Cancellations, memberEmails, availabilityByEmail, eventStarts))
	}

	if include(FilePartnerships) {
		loc := validator.Loc(FilePartnerships)
		for _, req := range data.Partnerships {
			if _, ok := memberByID[req.RequesterID]; !ok {
				report.Add(validator.ValidationError{
					Location: loc,
					Code:     validator.CodeReferentialIntegrity,
					Message:  fmt.Sprintf("requester id not found among members: %d", req.RequesterID),
				})
			}
			for _, id := range req.PartnerIDs {
				if _, ok := memberByID[id]; !ok {
					report.Add(validator.ValidationError{
						Location: loc.Field("partner_ids"),
						Code:     validator.CodeReferentialIntegrity,
						Message:  fmt.Sprintf("partner id not found among members: %d", id),
					})
				}
			}
		}
	}

	if include(FileAttendance) {
		loc := validator.Loc(FileAttendance).Field("valid_events")
		for _, ev := range data.Attendance {
			report.Merge(checkRoster(loc, ev.Attendees, memberByID))
		}
		if include(FileResponses) {
			for _, ev := range data.Attendance {
				if !eventStarts[ev.Start] {
					report.Add(validator.ValidationError{
						Location: loc,
						Code:     validator.CodeReferentialIntegrity,
						Message:  fmt.Sprintf("attendance event not found: %s", ev.Start.Format(eventDateLayout)),
					})
				}
			}
		}
	}
	if include(FileResults) {
		loc := validator.Loc(FileResults).Field("valid_events")
		for _, ev := range data.Results {
			report.Merge(checkRoster(loc, ev.Attendees, memberByID))
			report.Merge(checkRoster(loc, ev.Alternates, memberByID))
		}
		if include(FileResponses) {
			for _, ev := range data.Results {
				if !eventStarts[ev.Start] {
					report.Add(validator.ValidationError{
						Location: loc,
						Code:     validator.CodeReferentialIntegrity,
						Message:  fmt.Sprintf("result event not found: %s", ev.Start.Format(eventDateLayout)),
					})
				}
			}
		}
	}

	return report
}

// checkRoster verifies each roster entry references an existing member and
// that the entry's name matches the member's display name (or full name).
func checkRoster(loc validator.Location, entries []RosterEntry, memberByID map[int]Member) validator.Report {
	var report validator.Report
	for _, entry := range entries {
		member, ok := memberByID[entry.ID]
		if !ok {
			report.Add(validator.ValidationError{
				Location: loc,
				Code:     validator.CodeReferentialIntegrity,
				Message:  fmt.Sprintf("roster id not found among members: %d", entry.ID),
			})
			continue
		}
		expected := member.DisplayName
		if expected == "" {
			expected = member.Name
		}
		if validator.NormalizeNameKey(entry.Name) != validator.NormalizeNameKey(expected) {
			report.Add(validator.ValidationError{
				Location: loc,
				Code:     validator.CodeReferentialIntegrity,
				Message:  fmt.Sprintf("roster name does not match member %d: got %q, member is %q", entry.ID, entry.Name, expected),
				Input:    entry.Name,
			})
		}
	}
	return report
}

// checkCancellations verifies that cancelled events reference events derived
// from responses, and that cancelled availability references a known member
// whose availability actually contained the cancelled events.
func checkCancellations(c Cancellations, memberEmails map[string]bool, availabilityByEmail map[string]map[time.Time]bool, eventStarts map[time.Time]bool) validator.Report {
	var report validator.Report
	eventsLoc := validator.Loc(FileCancellations).Field("cancelled_events")
	for _, spec := range c.CancelledEvents {
		if !eventStarts[spec.Start] {
			report.Add(validator.ValidationError{
				Location: eventsLoc,
				Code:     validator.CodeReferentialIntegrity,
				Message:  fmt.Sprintf("cancelled event not found: %s", spec.Raw),
				Input:    spec.Raw,
			})
		}
	}

	availLoc := validator.Loc(FileCancellations).Field("cancelled_availability")
	for _, entry := range c.CancelledAvailability {
		key := validator.NormalizeEmailKey(entry.Email)
		if !memberEmails[key] {
			report.Add(validator.ValidationError{
				Location: availLoc.Field("email"),
				Code:     validator.CodeReferentialIntegrity,
				Message:  fmt.Sprintf("cancelled availability email not found among members: %s", entry.Email),
				Input:    entry.Email,
			})
		}
		memberStarts := availabilityByEmail[key]
		for _, spec := range entry.Events {
			if !eventStarts[spec.Start] {
				report.Add(validator.ValidationError{
					Location: availLoc.Field("events"),
					Code:     validator.CodeReferentialIntegrity,
					Message:  fmt.Sprintf("cancelled availability event not found: %s", spec.Raw),
					Input:    spec.Raw,
				})
				continue
			}
			if !memberStarts[spec.Start] {
				report.Add(validator.ValidationError{
					Location: availLoc.Field("events"),
					Code:     validator.CodeReferentialIntegrity,
					Message:  fmt.Sprintf("cancelled availability event not in %s's original availability: %s", entry.Email, spec.Raw),
					Input:    spec.Raw,
				})
			}
		}
	}
	return report
}
