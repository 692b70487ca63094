package validator

import (
	"fmt"
	"strings"
)

// InList validates that value is one of the allowed values.
func InList[T comparable](loc Location, value T, allowed []T) Rule {
	return Rule{
		Check: func() bool {
			for _, a := range allowed {
				if value == a {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Location: loc,
			Code:     CodeEnum,
			Message:  fmt.Sprintf("must be one of: %v", allowed),
			Input:    fmt.Sprintf("%v", value),
		},
	}
}

// MatchEnum matches value case-insensitively against the allowed set and
// returns the canonical casing on success. On failure the report cites the
// literal input and every allowed value.
func MatchEnum(loc Location, value string, allowed []string) (string, Report) {
	needle := strings.ToLower(strings.TrimSpace(value))
	for _, a := range allowed {
		if needle == strings.ToLower(a) {
			return a, nil
		}
	}
	return "", Report{{
		Location: loc,
		Code:     CodeEnum,
		Message:  fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
		Input:    value,
	}}
}
