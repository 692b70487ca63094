// Package validator provides the error model and the reusable field checks
// shared by every file validator in this module.
//
// The central type is Report, an ordered slice of located ValidationError
// values. Validators never stop at the first defect: every check appends to
// a Report and callers merge child reports into their own, so one run always
// yields one complete, deterministically ordered error list. A Report also
// implements error for callers that need one at a boundary.
//
// Each ValidationError carries a Location — the path to the offending value,
// starting with the file name and descending through row indices and field
// names — a symbolic Code, a human message, and the echoed raw input.
//
// Field checks follow the rule-closure style: constructors such as
// ValidEmail or MinInt return a Rule, and Apply executes a batch of rules
// and returns the failures.
//
//	report := validator.Apply(
//		validator.ValidEmail(loc.Field("Email Address"), email),
//		validator.MinInt(loc.Field("Max Sessions"), maxSessions, 0),
//	)
//
// The Context struct carries the per-run settings (reference year, timezone,
// allowed class durations) and is passed explicitly to every call that needs
// it; nothing in this package reads ambient state.
package validator
