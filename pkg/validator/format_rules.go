package validator

import (
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// MaxPersonNameLength bounds person names in runes.
	MaxPersonNameLength = 100
	// MaxEmailLength bounds email addresses in runes.
	MaxEmailLength = 254
)

// ValidEmail validates that a string has the shape of an email address:
// parseable per RFC 5322, a non-empty local part, and a dotted domain.
func ValidEmail(loc Location, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			if utf8.RuneCountInString(value) > MaxEmailLength {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}

			local, domain, found := strings.Cut(addr.Address, "@")
			if !found || local == "" {
				return false
			}
			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}
			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Location: loc,
			Code:     CodeParseError,
			Message:  "must be a valid email address",
			Input:    value,
		},
	}
}

// ValidPersonName validates that a name is non-empty and contains only
// letters, spaces, hyphens, apostrophes, or periods.
func ValidPersonName(loc Location, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			if utf8.RuneCountInString(value) > MaxPersonNameLength {
				return false
			}
			for _, r := range value {
				if unicode.IsLetter(r) {
					continue
				}
				switch r {
				case ' ', '-', '\'', '.':
					continue
				}
				return false
			}
			return true
		},
		Error: ValidationError{
			Location: loc,
			Code:     CodeParseError,
			Message:  "must contain only letters, spaces, hyphens, apostrophes, or periods",
			Input:    value,
		},
	}
}

// NonEmpty validates that a string has content after trimming.
func NonEmpty(loc Location, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Location: loc,
			Code:     CodeParseError,
			Message:  "must not be empty",
			Input:    value,
		},
	}
}
