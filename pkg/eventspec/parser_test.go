package eventspec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peepsched/schedval/pkg/eventspec"
	"github.com/peepsched/schedval/pkg/validator"
)

// testContext pins the reference year to 2020, where January 4 falls on a
// Saturday and February has 29 days.
func testContext(t *testing.T) validator.Context {
	t.Helper()
	tz, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return validator.Context{Year: 2020, TZ: tz, ClassDurations: []int{60, 90, 120}}
}

func TestParse_OldFormat(t *testing.T) {
	ctx := testContext(t)

	t.Run("date and start time only", func(t *testing.T) {
		spec, perr := eventspec.Parse("Saturday January 4 - 1pm", ctx)
		require.Nil(t, perr)
		assert.Equal(t, time.Date(2020, time.January, 4, 13, 0, 0, 0, ctx.TZ), spec.Start)
		assert.Equal(t, eventspec.FormatOld, spec.Format)
		assert.Zero(t, spec.DurationMinutes)
		_, ok := spec.End()
		assert.False(t, ok)
	})

	t.Run("ordinal suffixes are accepted", func(t *testing.T) {
		for _, raw := range []string{
			"Saturday January 4th - 1pm",
			"Wednesday January 1st - 7pm",
			"Thursday January 2nd - 7pm",
			"Friday January 3rd - 7pm",
		} {
			_, perr := eventspec.Parse(raw, ctx)
			assert.Nil(t, perr, "should parse: %s", raw)
		}
	})

	t.Run("minutes in the start time", func(t *testing.T) {
		spec, perr := eventspec.Parse("Saturday January 4 - 1:30pm", ctx)
		require.Nil(t, perr)
		assert.Equal(t, time.Date(2020, time.January, 4, 13, 30, 0, 0, ctx.TZ), spec.Start)
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		spec, perr := eventspec.Parse("saturday JANUARY 4 - 1PM", ctx)
		require.Nil(t, perr)
		assert.Equal(t, time.Date(2020, time.January, 4, 13, 0, 0, 0, ctx.TZ), spec.Start)
	})

	t.Run("twelve o'clock", func(t *testing.T) {
		noon, perr := eventspec.Parse("Wednesday January 1 - 12pm", ctx)
		require.Nil(t, perr)
		assert.Equal(t, 12, noon.Start.Hour())

		midnight, perr := eventspec.Parse("Wednesday January 1 - 12am", ctx)
		require.Nil(t, perr)
		assert.Equal(t, 0, midnight.Start.Hour())
	})

	t.Run("leap day parses in a leap year", func(t *testing.T) {
		spec, perr := eventspec.Parse("Saturday February 29 - 1pm", ctx)
		require.Nil(t, perr)
		assert.Equal(t, time.Date(2020, time.February, 29, 13, 0, 0, 0, ctx.TZ), spec.Start)
	})
}

func TestParse_NewFormat(t *testing.T) {
	ctx := testContext(t)

	t.Run("end time embeds the duration", func(t *testing.T) {
		spec, perr := eventspec.Parse("Saturday January 4 - 1pm to 2:30pm", ctx)
		require.Nil(t, perr)
		assert.Equal(t, eventspec.FormatNew, spec.Format)
		assert.Equal(t, 90, spec.DurationMinutes)
		end, ok := spec.End()
		require.True(t, ok)
		assert.Equal(t, time.Date(2020, time.January, 4, 14, 30, 0, 0, ctx.TZ), end)
	})

	t.Run("every allowed duration", func(t *testing.T) {
		for raw, minutes := range map[string]int{
			"Saturday January 4 - 1pm to 2pm":    60,
			"Saturday January 4 - 1pm to 2:30pm": 90,
			"Saturday January 4 - 1pm to 3pm":    120,
		} {
			spec, perr := eventspec.Parse(raw, ctx)
			require.Nil(t, perr, "should parse: %s", raw)
			assert.Equal(t, minutes, spec.DurationMinutes)
		}
	})
}

func TestParse_Errors(t *testing.T) {
	ctx := testContext(t)

	tests := []struct {
		name    string
		raw     string
		code    validator.Code
		message string
	}{
		{
			name:    "empty string",
			raw:     "",
			code:    validator.CodeParseError,
			message: `invalid event name: ""`,
		},
		{
			name:    "unparseable text",
			raw:     "pizza party next week",
			code:    validator.CodeParseError,
			message: "invalid event name: pizza party next week",
		},
		{
			name:    "missing dash",
			raw:     "Saturday January 4 1pm",
			code:    validator.CodeParseError,
			message: "invalid event name: Saturday January 4 1pm",
		},
		{
			name:    "hour out of range",
			raw:     "Saturday January 4 - 13pm",
			code:    validator.CodeParseError,
			message: "invalid event name: Saturday January 4 - 13pm",
		},
		{
			name:    "nonexistent calendar date",
			raw:     "Sunday February 30 - 1pm",
			code:    validator.CodeInvalidCalendarDate,
			message: "invalid calendar date: February 30, 2020",
		},
		{
			name:    "weekday does not match date",
			raw:     "Friday January 4 - 1pm",
			code:    validator.CodeWeekdayMismatch,
			message: "weekday does not match date: expected Saturday, got Friday",
		},
		{
			name:    "malformed end time",
			raw:     "Saturday January 4 - 1pm to late",
			code:    validator.CodeParseError,
			message: "invalid event end time: Saturday January 4 - 1pm to late",
		},
		{
			name:    "end before start",
			raw:     "Saturday January 4 - 2pm to 1pm",
			code:    validator.CodeInvalidTimeRange,
			message: "end time must be after start time",
		},
		{
			name:    "end equals start",
			raw:     "Saturday January 4 - 1pm to 1pm",
			code:    validator.CodeInvalidTimeRange,
			message: "end time must be after start time",
		},
		{
			name:    "duration outside the allowed set",
			raw:     "Saturday January 4 - 1pm to 2:15pm",
			code:    validator.CodeInvalidDuration,
			message: "unsupported event duration: 75 (allowed: [60 90 120])",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, perr := eventspec.Parse(tt.raw, ctx)
			require.NotNil(t, perr)
			assert.Equal(t, tt.code, perr.Code)
			assert.Equal(t, tt.message, perr.Message)
			assert.Equal(t, tt.raw, perr.Input)
		})
	}

	t.Run("leap day outside a leap year", func(t *testing.T) {
		ctx2021 := ctx
		ctx2021.Year = 2021
		_, perr := eventspec.Parse("Monday February 29 - 1pm", ctx2021)
		require.NotNil(t, perr)
		assert.Equal(t, validator.CodeInvalidCalendarDate, perr.Code)
		assert.Equal(t, "invalid calendar date: February 29, 2021", perr.Message)
	})
}

func TestParse_Purity(t *testing.T) {
	ctx := testContext(t)

	first, perr := eventspec.Parse("Saturday January 4 - 1pm to 3pm", ctx)
	require.Nil(t, perr)
	second, perr := eventspec.Parse("Saturday January 4 - 1pm to 3pm", ctx)
	require.Nil(t, perr)
	assert.Equal(t, first, second)
}

func TestParse_NilZoneDefaultsToUTC(t *testing.T) {
	ctx := validator.Context{Year: 2020, ClassDurations: []int{60}}
	spec, perr := eventspec.Parse("Saturday January 4 - 1pm", ctx)
	require.Nil(t, perr)
	assert.Equal(t, time.UTC, spec.Start.Location())
}
