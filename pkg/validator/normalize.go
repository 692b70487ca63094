package validator

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeEmailKey returns the comparison key used for email uniqueness and
// cross-file matching. It lowercases and trims the address and, for Gmail
// addresses, strips the dots Gmail ignores in the local part. The stored
// value is never changed, only the key.
func NormalizeEmailKey(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if local, ok := strings.CutSuffix(normalized, "@gmail.com"); ok {
		return strings.ReplaceAll(local, ".", "") + "@gmail.com"
	}
	return normalized
}

var foldCaser = cases.Fold()

// NormalizeNameKey returns the case-folded comparison key used for name
// uniqueness checks.
func NormalizeNameKey(name string) string {
	return foldCaser.String(strings.TrimSpace(name))
}
