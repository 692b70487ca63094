package validator

import "fmt"

// MinInt validates that value is greater than or equal to min.
func MinInt(loc Location, value, min int) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Location: loc,
			Code:     CodeRange,
			Message:  fmt.Sprintf("must be at least %d", min),
			Input:    fmt.Sprintf("%d", value),
		},
	}
}

// PositiveInt validates that value is strictly greater than zero.
func PositiveInt(loc Location, value int) Rule {
	return Rule{
		Check: func() bool {
			return value > 0
		},
		Error: ValidationError{
			Location: loc,
			Code:     CodeRange,
			Message:  "must be a positive integer",
			Input:    fmt.Sprintf("%d", value),
		},
	}
}

// AllowedDuration validates that a duration in minutes belongs to the
// configured class-duration set.
func AllowedDuration(loc Location, minutes int, ctx Context) Rule {
	return Rule{
		Check: func() bool {
			return ctx.DurationAllowed(minutes)
		},
		Error: ValidationError{
			Location: loc,
			Code:     CodeInvalidDuration,
			Message:  fmt.Sprintf("unsupported event duration: %d (allowed: %v)", minutes, ctx.ClassDurations),
			Input:    fmt.Sprintf("%d", minutes),
		},
	}
}
