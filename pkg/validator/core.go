package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Code identifies the kind of a validation defect.
type Code string

const (
	CodeParseError           Code = "parse_error"
	CodeInvalidCalendarDate  Code = "invalid_calendar_date"
	CodeWeekdayMismatch      Code = "weekday_mismatch"
	CodeInvalidTimeRange     Code = "invalid_time_range"
	CodeInvalidDuration      Code = "invalid_duration"
	CodeFormatConsistency    Code = "format_consistency"
	CodeUniqueness           Code = "uniqueness"
	CodeRange                Code = "range"
	CodeEnum                 Code = "enum"
	CodeReferentialIntegrity Code = "referential_integrity"
	CodeOverlap              Code = "overlap"
	CodeSelfReference        Code = "self_reference"
)

// Location is the ordered path to an offending value: the file name first,
// then row/list indices (int segments) and field names (string segments)
// from outermost to innermost. A uniqueness error spanning several rows
// carries every involved row index.
type Location []any

// Loc builds a Location from the given segments.
func Loc(segments ...any) Location {
	return Location(segments)
}

// Index returns a new Location with a row/list index appended.
func (l Location) Index(i int) Location {
	out := make(Location, len(l), len(l)+1)
	copy(out, l)
	return append(out, i)
}

// Field returns a new Location with a field name appended.
func (l Location) Field(name string) Location {
	out := make(Location, len(l), len(l)+1)
	copy(out, l)
	return append(out, name)
}

// Equal reports whether two locations have identical segments.
func (l Location) Equal(other Location) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the location in a compact dotted form, e.g.
// "responses[3].Email Address" or "cancellations.cancelled_events[2]".
func (l Location) String() string {
	var b strings.Builder
	for i, seg := range l {
		switch s := seg.(type) {
		case int:
			fmt.Fprintf(&b, "[%d]", s)
		case string:
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(s)
		default:
			fmt.Fprintf(&b, ".%v", s)
		}
	}
	return b.String()
}

// ValidationError represents a single located validation defect.
type ValidationError struct {
	Location Location
	Code     Code
	Message  string
	// Input echoes the offending raw value when one exists.
	Input string
}

// Report is an ordered collection of validation errors. An empty report
// means the validated input is valid. Report implements error so it can
// cross boundaries that expect one, but validators return it directly:
// nothing in this package aborts on the first defect.
type Report []ValidationError

func (r Report) Error() string {
	if len(r) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(r))
	for _, e := range r {
		parts = append(parts, fmt.Sprintf("%s: %s", e.Location, e.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Valid reports whether the report contains no errors.
func (r Report) Valid() bool {
	return len(r) == 0
}

func (r *Report) Add(err ValidationError) {
	*r = append(*r, err)
}

// Merge appends every error of the child report, preserving order.
func (r *Report) Merge(child Report) {
	*r = append(*r, child...)
}

// Has reports whether any error carries the given code.
func (r Report) Has(code Code) bool {
	for _, e := range r {
		if e.Code == code {
			return true
		}
	}
	return false
}

// HasAt reports whether any error is located exactly at loc. File schema
// validators use it to keep a field whose parse failed out of list-level
// scans without dropping the rest of the row.
func (r Report) HasAt(loc Location) bool {
	for _, e := range r {
		if e.Location.Equal(loc) {
			return true
		}
	}
	return false
}

// AsReport extracts a Report from an error chain.
func AsReport(err error) (Report, bool) {
	if err == nil {
		return nil, false
	}
	var r Report
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes the rules in order and returns every failure.
func Apply(rules ...Rule) Report {
	var report Report
	for _, rule := range rules {
		if !rule.Check() {
			report.Add(rule.Error)
		}
	}
	return report
}
