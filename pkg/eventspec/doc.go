// Package eventspec parses the free-text availability and event date strings
// used by response and cancellation files into normalized EventSpec values.
//
// Two mutually exclusive formats exist. The old format names a weekday, a
// date, and a start time ("Saturday January 4 - 1pm"); its duration is
// resolved later from a companion event row. The new format appends the end
// time ("Saturday January 4 - 1pm to 2:30pm") and therefore embeds the
// duration. Parse detects the format, validates the calendar date, checks
// the weekday token against the computed weekday, rejects non-positive time
// ranges, and for the new format checks the duration against the allowed
// class durations of the validation context.
package eventspec
