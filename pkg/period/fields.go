package period

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/peepsched/schedval/pkg/validator"
)

// parseInt parses a required integer field.
func parseInt(loc validator.Location, value string) (int, validator.Report) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, validator.Report{{
			Location: loc,
			Code:     validator.CodeParseError,
			Message:  "must be an integer",
			Input:    value,
		}}
	}
	return v, nil
}

// parseBoundedInt parses an integer field and checks a lower bound.
func parseBoundedInt(loc validator.Location, value string, min int) (int, validator.Report) {
	v, report := parseInt(loc, value)
	if !report.Valid() {
		return 0, report
	}
	report.Merge(validator.Apply(validator.MinInt(loc, v, min)))
	return v, report
}

// parsePositiveInt parses an integer field that must be strictly positive.
func parsePositiveInt(loc validator.Location, value string) (int, validator.Report) {
	v, report := parseInt(loc, value)
	if !report.Valid() {
		return 0, report
	}
	report.Merge(validator.Apply(validator.PositiveInt(loc, v)))
	return v, report
}

// parseRoleField matches a role field against the Leader/Follower enum.
func parseRoleField(loc validator.Location, value string) (Role, validator.Report) {
	role, ok := ParseRole(value)
	if !ok {
		return "", validator.Report{{
			Location: loc,
			Code:     validator.CodeEnum,
			Message:  fmt.Sprintf("must be one of: %s, %s", RoleLeader, RoleFollower),
			Input:    value,
		}}
	}
	return role, nil
}

// duplicateGroups scans n values in order and returns the index groups that
// share a key, ordered by first occurrence. The key func reports ok=false
// for values that never parsed; those cannot contribute to a duplicate scan.
func duplicateGroups[K comparable](n int, key func(i int) (K, bool)) [][]int {
	byKey := make(map[K][]int, n)
	order := make([]K, 0, n)
	for i := range n {
		k, ok := key(i)
		if !ok {
			continue
		}
		if _, seen := byKey[k]; !seen {
			order = append(order, k)
		}
		byKey[k] = append(byKey[k], i)
	}
	var groups [][]int
	for _, k := range order {
		if rows := byKey[k]; len(rows) > 1 {
			groups = append(groups, rows)
		}
	}
	return groups
}

// dupLoc builds the location of a uniqueness error: the base path, every
// involved row index, then the field name when one applies.
func dupLoc(base validator.Location, group []int, field string) validator.Location {
	loc := base
	for _, i := range group {
		loc = loc.Index(i)
	}
	if field != "" {
		loc = loc.Field(field)
	}
	return loc
}

func uniquenessError(loc validator.Location, message, input string) validator.ValidationError {
	return validator.ValidationError{
		Location: loc,
		Code:     validator.CodeUniqueness,
		Message:  message,
		Input:    input,
	}
}
