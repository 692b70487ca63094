package period

import "github.com/peepsched/schedval/pkg/validator"

// ValidateAttendance validates the attendance file: each event's id, date,
// duration, and roster, plus file-wide start and id uniqueness. A nil input
// (file absent) is valid and yields no events.
func ValidateAttendance(raw *RawEvents, ctx validator.Context) ([]AttendanceEvent, validator.Report) {
	parsed, report := validateEventFile(FileAttendance, raw, ctx, false)

	var out []AttendanceEvent
	for _, ev := range parsed {
		out = append(out, ev.AttendanceEvent)
	}
	return out, report
}
