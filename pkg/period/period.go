package period

import (
	"context"

	"github.com/peepsched/schedval/pkg/async"
	"github.com/peepsched/schedval/pkg/validator"
)

// fileOutcome carries one file validator's report plus a closure that
// installs its typed output into Data. A shared shape lets the six futures
// travel through one WaitAll call.
type fileOutcome struct {
	file   string
	report validator.Report
	apply  func(*Data)
}

// Validate runs every file schema validator, then the cross-file checks,
// and returns the typed period data plus one combined report.
//
// The six file validators are independent and run concurrently. WaitAll
// returns their outcomes in argument order, so completion order never leaks
// into the report: the combined report lists members errors first, then
// responses, cancellations, partnerships, attendance, results, and finally
// the cross-file errors.
func Validate(raw RawPeriod, vc validator.Context, opts Options) (Data, validator.Report) {
	// The workload is pure and bounded by input size; there is nothing to
	// cancel or time out.
	ctx := context.Background()

	run := func(file string, validate func() (func(*Data), validator.Report)) *async.Future[fileOutcome] {
		return async.Async(ctx, file, func(_ context.Context, name string) (fileOutcome, error) {
			apply, report := validate()
			return fileOutcome{file: name, report: report, apply: apply}, nil
		})
	}

	outcomes, _ := async.WaitAll(
		run(FileMembers, func() (func(*Data), validator.Report) {
			typed, report := ValidateMembers(raw.Members, vc)
			return func(d *Data) { d.Members = typed }, report
		}),
		run(FileResponses, func() (func(*Data), validator.Report) {
			typed, report := ValidateResponses(raw.Responses, vc)
			return func(d *Data) { d.Responses = typed }, report
		}),
		run(FileCancellations, func() (func(*Data), validator.Report) {
			typed, report := ValidateCancellations(raw.Cancellations, vc)
			return func(d *Data) { d.Cancellations = typed }, report
		}),
		run(FilePartnerships, func() (func(*Data), validator.Report) {
			typed, report := ValidatePartnerships(raw.Partnerships, vc)
			return func(d *Data) { d.Partnerships = typed }, report
		}),
		run(FileAttendance, func() (func(*Data), validator.Report) {
			typed, report := ValidateAttendance(raw.Attendance, vc)
			return func(d *Data) { d.Attendance = typed }, report
		}),
		run(FileResults, func() (func(*Data), validator.Report) {
			typed, report := ValidateResults(raw.Results, vc)
			return func(d *Data) { d.Results = typed }, report
		}),
	)

	var data Data
	var report validator.Report
	partial := make(map[string]bool, len(outcomes))
	for _, o := range outcomes {
		o.apply(&data)
		partial[o.file] = !o.report.Valid()
		report.Merge(o.report)
	}

	report.Merge(validateCrossFile(data, partial, vc, opts))
	return data, report
}
