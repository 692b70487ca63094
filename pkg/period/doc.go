// Package period validates the input files of one scheduling period: the
// members roster, availability responses, cancellations, partnership
// requests, attendance logs, and scheduling results.
//
// Each file kind has its own validator with the shape
// Validate<Kind>(raw, ctx) (Typed, Report). Rows are validated
// independently — a defective row never stops its siblings — and list-level
// checks (uniqueness, format consistency, event-row reconciliation) then run
// over the rows that parsed. Validate ties the six validators together,
// running them concurrently, merging their reports in file declaration
// order, and finishing with the cross-file referential checks.
//
// The typed collections returned alongside a non-empty report contain only
// the rows that were individually valid; callers must treat them as partial
// until the report is empty.
package period
