package period

import "github.com/peepsched/schedval/pkg/validator"

// ValidateResults validates the results file: everything the attendance
// validator checks, plus alternates — unique ids, valid entries, and no
// overlap with the attendee set. A nil input (file absent) is valid.
func ValidateResults(raw *RawEvents, ctx validator.Context) ([]ResultEvent, validator.Report) {
	return validateEventFile(FileResults, raw, ctx, true)
}
