package period

import (
	"strings"
	"time"

	"github.com/peepsched/schedval/pkg/eventspec"
)

// File names used as the first location segment of every error, listed in
// declaration order. Reports are always merged in this order.
const (
	FileMembers       = "members"
	FileResponses     = "responses"
	FileCancellations = "cancellations"
	FilePartnerships  = "partnerships"
	FileAttendance    = "attendance"
	FileResults       = "results"
)

// Role is a member's dance role.
type Role string

const (
	RoleLeader   Role = "Leader"
	RoleFollower Role = "Follower"
)

// ParseRole matches a raw role value case-insensitively, accepting the short
// forms "lead" and "follow".
func ParseRole(v string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "leader", "lead":
		return RoleLeader, true
	case "follower", "follow":
		return RoleFollower, true
	}
	return "", false
}

// SwitchPreference captures how willing a respondent is to dance their
// secondary role.
type SwitchPreference string

const (
	SwitchPrimaryOnly   SwitchPreference = "primary_only"
	SwitchIfPrimaryFull SwitchPreference = "switch_if_primary_full"
	SwitchIfNeeded      SwitchPreference = "switch_if_needed"
)

// ParseSwitchPreference matches the exact sentence the survey form emits for
// the secondary-role field, ignoring surrounding whitespace only.
func ParseSwitchPreference(v string) (SwitchPreference, bool) {
	switch strings.TrimSpace(v) {
	case "I only want to be scheduled in my primary role":
		return SwitchPrimaryOnly, true
	case "I'm happy to dance my secondary role if it lets me attend when my primary is full":
		return SwitchIfPrimaryFull, true
	case "I'm willing to dance my secondary role only if it's needed to enable filling a session":
		return SwitchIfNeeded, true
	}
	return "", false
}

// Member is one validated row of the members file.
type Member struct {
	ID            int
	Name          string
	DisplayName   string
	Email         string
	Role          Role
	Index         int
	Priority      int
	TotalAttended int
	Active        bool
	DateJoined    time.Time
}

// Response is one validated row of the responses file.
type Response struct {
	Timestamp   time.Time
	Name        string
	DisplayName string
	Email       string
	PrimaryRole Role
	// SwitchPref is empty when the respondent left the field blank.
	SwitchPref      SwitchPreference
	MaxSessions     int
	MinIntervalDays int
	Availability    []eventspec.EventSpec
}

// EventRow is a companion record for old-format availability: it names an
// event in the old format and supplies the duration the format omits.
type EventRow struct {
	Name            string
	DurationMinutes int
	Start           time.Time
}

// ResponsesFile is the typed output of the responses validator.
type ResponsesFile struct {
	Responses []Response
	EventRows []EventRow
}

// Events derives the period's event list. When event rows exist they are
// authoritative; otherwise the events are the distinct availability starts,
// in first-seen order, with durations taken from new-format specs.
func (f ResponsesFile) Events() []EventRow {
	if len(f.EventRows) > 0 {
		return f.EventRows
	}
	var events []EventRow
	seen := make(map[time.Time]bool)
	for _, r := range f.Responses {
		for _, spec := range r.Availability {
			if seen[spec.Start] {
				continue
			}
			seen[spec.Start] = true
			events = append(events, EventRow{
				Name:            spec.Raw,
				DurationMinutes: spec.DurationMinutes,
				Start:           spec.Start,
			})
		}
	}
	return events
}

// CancelledAvailability lists the events one member can no longer attend.
type CancelledAvailability struct {
	Email  string
	Events []eventspec.EventSpec
}

// Cancellations is the typed output of the cancellations validator.
type Cancellations struct {
	CancelledEvents       []eventspec.EventSpec
	CancelledAvailability []CancelledAvailability
}

// PartnershipRequest asks that the requester be scheduled together with the
// listed partners.
type PartnershipRequest struct {
	RequesterID int
	PartnerIDs  []int
}

// RosterEntry is one attendee or alternate of an attendance/result event.
type RosterEntry struct {
	ID   int
	Name string
	Role Role
}

// AttendanceEvent is one validated event of the attendance file.
type AttendanceEvent struct {
	ID              int
	Start           time.Time
	DurationMinutes int
	Attendees       []RosterEntry
}

// ResultEvent is one validated event of the results file: an attendance
// event plus its alternates.
type ResultEvent struct {
	AttendanceEvent
	Alternates []RosterEntry
}

// Data is the typed output of a full period validation. Collections for
// files that failed row validation contain only the rows that parsed;
// callers must check the accompanying report before trusting the data.
type Data struct {
	Members       []Member
	Responses     ResponsesFile
	Cancellations Cancellations
	Partnerships  []PartnershipRequest
	Attendance    []AttendanceEvent
	Results       []ResultEvent
}
