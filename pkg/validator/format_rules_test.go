package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peepsched/schedval/pkg/validator"
)

func TestValidEmail(t *testing.T) {
	loc := validator.Loc("members").Index(0).Field("Email Address")

	t.Run("valid emails", func(t *testing.T) {
		validEmails := []string{
			"test@example.com",
			"user.name@domain.co.uk",
			"user+tag@example.org",
			"jane.smith@gmail.com",
			"1234567890@example.com",
		}

		for _, email := range validEmails {
			report := validator.Apply(validator.ValidEmail(loc, email))
			assert.True(t, report.Valid(), "email should be valid: %s", email)
		}
	})

	t.Run("invalid emails", func(t *testing.T) {
		invalidEmails := []string{
			"",
			"   ",
			"plainaddress",
			"jane.smith.gmail.com",
			"@missingdomain.com",
			"missing@domain",
			"missing@domain..com",
			"missing@.domain.com",
		}

		for _, email := range invalidEmails {
			report := validator.Apply(validator.ValidEmail(loc, email))
			require.False(t, report.Valid(), "email should be invalid: %s", email)
			assert.Equal(t, validator.CodeParseError, report[0].Code)
			assert.True(t, loc.Equal(report[0].Location))
		}
	})

	t.Run("overlong email is invalid", func(t *testing.T) {
		email := strings.Repeat("a", validator.MaxEmailLength) + "@example.com"
		report := validator.Apply(validator.ValidEmail(loc, email))
		assert.False(t, report.Valid())
	})
}

func TestValidPersonName(t *testing.T) {
	loc := validator.Loc("members").Index(0).Field("Name")

	t.Run("valid names", func(t *testing.T) {
		for _, name := range []string{
			"Jane Smith",
			"Mary-Jane O'Connor",
			"J. R. Tolkien",
			"Zoë",
		} {
			report := validator.Apply(validator.ValidPersonName(loc, name))
			assert.True(t, report.Valid(), "name should be valid: %s", name)
		}
	})

	t.Run("invalid names", func(t *testing.T) {
		for _, name := range []string{
			"",
			"   ",
			"Jane123",
			"Jane; DROP TABLE",
			strings.Repeat("a", validator.MaxPersonNameLength+1),
		} {
			report := validator.Apply(validator.ValidPersonName(loc, name))
			require.False(t, report.Valid(), "name should be invalid: %s", name)
			assert.Equal(t, validator.CodeParseError, report[0].Code)
		}
	})
}

func TestNonEmpty(t *testing.T) {
	loc := validator.Loc("members").Index(0).Field("Name")

	assert.True(t, validator.Apply(validator.NonEmpty(loc, "x")).Valid())
	assert.False(t, validator.Apply(validator.NonEmpty(loc, "")).Valid())
	assert.False(t, validator.Apply(validator.NonEmpty(loc, "  \t ")).Valid())
}
