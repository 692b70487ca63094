package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peepsched/schedval/pkg/validator"
)

func TestMinInt(t *testing.T) {
	loc := validator.Loc("members").Index(0).Field("Priority")

	assert.True(t, validator.Apply(validator.MinInt(loc, 0, 0)).Valid())
	assert.True(t, validator.Apply(validator.MinInt(loc, 5, 0)).Valid())

	report := validator.Apply(validator.MinInt(loc, -1, 0))
	require.False(t, report.Valid())
	assert.Equal(t, validator.CodeRange, report[0].Code)
	assert.Equal(t, "must be at least 0", report[0].Message)
}

func TestPositiveInt(t *testing.T) {
	loc := validator.Loc("members").Index(0).Field("id")

	assert.True(t, validator.Apply(validator.PositiveInt(loc, 1)).Valid())

	for _, v := range []int{0, -3} {
		report := validator.Apply(validator.PositiveInt(loc, v))
		require.False(t, report.Valid())
		assert.Equal(t, validator.CodeRange, report[0].Code)
	}
}

func TestAllowedDuration(t *testing.T) {
	ctx := validator.Context{ClassDurations: []int{60, 90, 120}}
	loc := validator.Loc("attendance").Field("valid_events").Index(0).Field("duration")

	for _, minutes := range []int{60, 90, 120} {
		assert.True(t, validator.Apply(validator.AllowedDuration(loc, minutes, ctx)).Valid())
	}

	report := validator.Apply(validator.AllowedDuration(loc, 75, ctx))
	require.False(t, report.Valid())
	assert.Equal(t, validator.CodeInvalidDuration, report[0].Code)
	assert.Equal(t, "unsupported event duration: 75 (allowed: [60 90 120])", report[0].Message)
}
