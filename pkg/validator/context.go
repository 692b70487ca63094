package validator

import "time"

// Context carries the immutable per-run validation settings. It is threaded
// explicitly into every parse and validate call; there is no process-wide
// configuration state.
type Context struct {
	// Year is the reference year assumed when an event string omits one.
	Year int
	// TZ applies to every parsed date-time in the run.
	TZ *time.Location
	// ClassDurations is the set of allowed class lengths in minutes.
	ClassDurations []int
}

// DurationAllowed reports whether minutes belongs to the configured set.
func (c Context) DurationAllowed(minutes int) bool {
	for _, d := range c.ClassDurations {
		if d == minutes {
			return true
		}
	}
	return false
}
