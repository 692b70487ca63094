package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peepsched/schedval/pkg/validator"
)

func TestInList(t *testing.T) {
	loc := validator.Loc("members").Index(0).Field("Active")

	assert.True(t, validator.Apply(validator.InList(loc, "TRUE", []string{"TRUE", "FALSE"})).Valid())

	report := validator.Apply(validator.InList(loc, "yes", []string{"TRUE", "FALSE"}))
	require.False(t, report.Valid())
	assert.Equal(t, validator.CodeEnum, report[0].Code)
	assert.Equal(t, "yes", report[0].Input)
}

func TestMatchEnum(t *testing.T) {
	loc := validator.Loc("members").Index(0).Field("Role")
	allowed := []string{"Leader", "Follower"}

	t.Run("returns canonical casing", func(t *testing.T) {
		for input, want := range map[string]string{
			"Leader":   "Leader",
			"leader":   "Leader",
			"FOLLOWER": "Follower",
			" leader ": "Leader",
		} {
			got, report := validator.MatchEnum(loc, input, allowed)
			require.True(t, report.Valid(), "input: %q", input)
			assert.Equal(t, want, got)
		}
	})

	t.Run("cites the literal input and allowed set", func(t *testing.T) {
		_, report := validator.MatchEnum(loc, "Ledaer", allowed)
		require.Len(t, report, 1)
		assert.Equal(t, validator.CodeEnum, report[0].Code)
		assert.Equal(t, "must be one of: Leader, Follower", report[0].Message)
		assert.Equal(t, "Ledaer", report[0].Input)
	})
}
