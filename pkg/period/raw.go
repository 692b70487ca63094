package period

// Row is one decoded CSV row, keyed by trimmed header name. Decoding raw
// bytes into rows is the file-loading layer's concern; validators only ever
// see these shapes.
type Row map[string]string

// RawResponses is the decoded responses file: the response rows plus any
// companion event rows supplying durations for old-format availability.
type RawResponses struct {
	Responses []Row
	EventRows []Row
}

// RawCancelledAvailability is one decoded cancelled-availability entry.
type RawCancelledAvailability struct {
	Email  string   `json:"email"`
	Events []string `json:"events"`
}

// RawCancellations is the decoded cancellations file.
type RawCancellations struct {
	CancelledEvents       []string                   `json:"cancelled_events"`
	CancelledAvailability []RawCancelledAvailability `json:"cancelled_availability"`
}

// RawPartnerships is the decoded partnerships payload: a list of single-key
// mappings from a string-typed requester id to its partner ids.
type RawPartnerships []map[string][]int

// RawRosterEntry is one decoded attendee or alternate.
type RawRosterEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// RawEvent is one decoded attendance or result event. Alternates stays nil
// for attendance files.
type RawEvent struct {
	ID              int              `json:"id"`
	Date            string           `json:"date"`
	DurationMinutes int              `json:"duration_minutes"`
	Attendees       []RawRosterEntry `json:"attendees"`
	Alternates      []RawRosterEntry `json:"alternates"`
}

// RawEvents is the decoded attendance or results file.
type RawEvents struct {
	ValidEvents []RawEvent `json:"valid_events"`
}

// RawPeriod gathers the decoded inputs of one scheduling period. Optional
// files that were absent stay nil and are skipped by validation.
type RawPeriod struct {
	Members       []Row
	Responses     RawResponses
	Cancellations *RawCancellations
	Partnerships  RawPartnerships
	Attendance    *RawEvents
	Results       *RawEvents
}
