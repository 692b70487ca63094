package period_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/peepsched/schedval/pkg/period"
	"github.com/peepsched/schedval/pkg/validator"
)

// testContext pins the reference year to 2020, where January 4 falls on a
// Saturday.
func testContext(t *testing.T) validator.Context {
	t.Helper()
	tz, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return validator.Context{Year: 2020, TZ: tz, ClassDurations: []int{60, 90, 120}}
}

var memberNames = []string{
	"Ada Lovelace", "Grace Hopper", "Alan Turing", "Katherine Johnson",
	"Edsger Dijkstra", "Barbara Liskov", "Donald Knuth", "Frances Allen",
}

// memberRow builds a valid members row. id doubles as the Index value and
// drives Priority downward so the default fixture always satisfies the
// priority ordering check.
func memberRow(id int, overrides period.Row) period.Row {
	name := memberNames[(id-1)%len(memberNames)]
	row := period.Row{
		"id":             fmt.Sprintf("%d", id),
		"Name":           name,
		"Display Name":   "",
		"Email Address":  fmt.Sprintf("member%d@example.com", id),
		"Role":           "Follower",
		"Index":          fmt.Sprintf("%d", id-1),
		"Priority":       fmt.Sprintf("%d", 100-id),
		"Total Attended": "3",
		"Active":         "TRUE",
		"Date Joined":    "2019-05-01",
	}
	for k, v := range overrides {
		row[k] = v
	}
	return row
}

// responseRow builds a valid responses row keyed to the same member emails
// the memberRow fixture produces.
func responseRow(id int, overrides period.Row) period.Row {
	name := memberNames[(id-1)%len(memberNames)]
	row := period.Row{
		"Timestamp":         "1/2/2020 10:30:00",
		"Name":              name,
		"Display Name":      "",
		"Email Address":     fmt.Sprintf("member%d@example.com", id),
		"Primary Role":      "Leader",
		"Secondary Role":    "",
		"Max Sessions":      "2",
		"Availability":      "Saturday January 4 - 1pm to 2pm, Saturday January 11 - 1pm to 2pm",
		"Min Interval Days": "7",
	}
	for k, v := range overrides {
		row[k] = v
	}
	return row
}

// eventRow builds a companion event row for old-format availability.
func eventRow(name, duration string) period.Row {
	return period.Row{
		"Name":           name,
		"Event Duration": duration,
	}
}

func rosterEntry(id int, role string) period.RawRosterEntry {
	return period.RawRosterEntry{
		ID:   id,
		Name: memberNames[(id-1)%len(memberNames)],
		Role: role,
	}
}

// validPeriod builds a RawPeriod whose every file passes validation.
func validPeriod() period.RawPeriod {
	return period.RawPeriod{
		Members: []period.Row{
			memberRow(1, nil),
			memberRow(2, nil),
			memberRow(3, nil),
		},
		Responses: period.RawResponses{
			Responses: []period.Row{
				responseRow(1, nil),
				responseRow(2, nil),
			},
		},
		Cancellations: &period.RawCancellations{
			CancelledAvailability: []period.RawCancelledAvailability{
				{Email: "member1@example.com", Events: []string{"Saturday January 11 - 1pm to 2pm"}},
			},
		},
		Partnerships: period.RawPartnerships{
			{"1": []int{2}},
		},
		Attendance: &period.RawEvents{
			ValidEvents: []period.RawEvent{
				{
					ID:              0,
					Date:            "2020-01-04 13:00",
					DurationMinutes: 60,
					Attendees:       []period.RawRosterEntry{rosterEntry(1, "Follower"), rosterEntry(2, "Leader")},
				},
			},
		},
		Results: &period.RawEvents{
			ValidEvents: []period.RawEvent{
				{
					ID:              0,
					Date:            "2020-01-04 13:00",
					DurationMinutes: 60,
					Attendees:       []period.RawRosterEntry{rosterEntry(1, "Follower")},
					Alternates:      []period.RawRosterEntry{rosterEntry(3, "Follower")},
				},
			},
		},
	}
}
