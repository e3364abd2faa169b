package hours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoc(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestEvaluateNilSpecIsUnknown(t *testing.T) {
	now := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)
	result := Evaluate(nil, DefaultTimezone, now)

	assert.Equal(t, StatusUnknown, result.Status)
	assert.False(t, result.IsOpen)
	assert.False(t, result.HoursParsed)
	assert.Equal(t, ReasonUnavailable, result.Reason)
	assert.Nil(t, result.NextOpen)
	assert.Equal(t, DefaultTimezone, result.Timezone)
}

func TestEvaluateOpenWithinInterval(t *testing.T) {
	spec, ok := Parse("Monday: 9:00 AM - 5:00 PM")
	require.True(t, ok)

	eastern := mustLoc(t, "America/New_York")
	// Monday 2024-06-03, 12:00 local.
	now := time.Date(2024, 6, 3, 12, 0, 0, 0, eastern)

	result := Evaluate(spec, "America/New_York", now)
	assert.True(t, result.IsOpen)
	assert.Equal(t, StatusOpen, result.Status)
	assert.Contains(t, result.Reason, "5:00 PM")
	assert.True(t, result.HoursParsed)
}

func TestEvaluateClosedBeforeOpening(t *testing.T) {
	spec, ok := Parse("Monday: 9:00 AM - 5:00 PM")
	require.True(t, ok)

	eastern := mustLoc(t, "America/New_York")
	now := time.Date(2024, 6, 3, 7, 30, 0, 0, eastern)

	result := Evaluate(spec, "America/New_York", now)
	assert.False(t, result.IsOpen)
	assert.Equal(t, StatusClosed, result.Status)
	require.NotNil(t, result.NextOpen)
	assert.Equal(t, time.Monday, result.NextOpen.Weekday())
	assert.Equal(t, 9, result.NextOpen.Hour())
	assert.Equal(t, now.Day(), result.NextOpen.Day())
}

func TestEvaluateOvernightInterval(t *testing.T) {
	spec, ok := Parse("Monday: 6:00 PM - 2:00 AM")
	require.True(t, ok)

	eastern := mustLoc(t, "America/New_York")

	// Monday 23:00 — inside the pre-midnight half.
	result := Evaluate(spec, "America/New_York", time.Date(2024, 6, 3, 23, 0, 0, 0, eastern))
	assert.True(t, result.IsOpen)
	assert.Equal(t, StatusOpen, result.Status)

	// Tuesday 01:00 — inside Monday's overnight spill.
	result = Evaluate(spec, "America/New_York", time.Date(2024, 6, 4, 1, 0, 0, 0, eastern))
	assert.True(t, result.IsOpen)
	assert.Equal(t, StatusOpen, result.Status)
	assert.Contains(t, result.Reason, "Monday")

	// Tuesday 03:00 — past the spill, closed until next Monday evening.
	result = Evaluate(spec, "America/New_York", time.Date(2024, 6, 4, 3, 0, 0, 0, eastern))
	assert.False(t, result.IsOpen)
	assert.Equal(t, StatusClosed, result.Status)
	require.NotNil(t, result.NextOpen)
	assert.Equal(t, time.Monday, result.NextOpen.Weekday())
	assert.Equal(t, 18, result.NextOpen.Hour())
}

func TestEvaluateFullDaySpec(t *testing.T) {
	spec, ok := Parse("24/7")
	require.True(t, ok)

	result := Evaluate(spec, "America/Chicago", time.Date(2024, 6, 5, 4, 0, 0, 0, time.UTC))
	assert.True(t, result.IsOpen)
	assert.Equal(t, StatusOpen, result.Status)
	assert.Equal(t, "open 24 hours", result.Reason)
}

func TestEvaluateNextOpenWrapsWeek(t *testing.T) {
	spec, ok := Parse("Sunday: 10:00 AM - 3:00 PM")
	require.True(t, ok)

	eastern := mustLoc(t, "America/New_York")
	// Monday noon; next opening is the following Sunday, six days out.
	now := time.Date(2024, 6, 3, 12, 0, 0, 0, eastern)

	result := Evaluate(spec, "America/New_York", now)
	assert.False(t, result.IsOpen)
	require.NotNil(t, result.NextOpen)
	assert.Equal(t, time.Sunday, result.NextOpen.Weekday())
	assert.Equal(t, 10, result.NextOpen.Hour())
	assert.Equal(t, now.AddDate(0, 0, 6).Day(), result.NextOpen.Day())
}

func TestEvaluateEmptySpecHasNoNextOpen(t *testing.T) {
	result := Evaluate(&Spec{}, "America/New_York", time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC))
	assert.False(t, result.IsOpen)
	assert.Equal(t, StatusClosed, result.Status)
	assert.Nil(t, result.NextOpen)
}

func TestEvaluateConvertsToLocalZone(t *testing.T) {
	spec, ok := Parse("Monday: 9:00 AM - 5:00 PM")
	require.True(t, ok)

	// 22:00 UTC Monday is 15:00 in Los Angeles but 18:00 in New York.
	now := time.Date(2024, 6, 3, 22, 0, 0, 0, time.UTC)

	west := Evaluate(spec, "America/Los_Angeles", now)
	assert.True(t, west.IsOpen)

	east := Evaluate(spec, "America/New_York", now)
	assert.False(t, east.IsOpen)
}

func TestEvaluateUnknownZoneFallsBack(t *testing.T) {
	spec, ok := Parse("Monday: 9:00 AM - 5:00 PM")
	require.True(t, ok)

	result := Evaluate(spec, "Not/AZone", time.Date(2024, 6, 3, 16, 0, 0, 0, time.UTC))
	// Interpreted in the default zone; must still produce a well-formed result.
	assert.NotEqual(t, StatusUnknown, result.Status)
	assert.Equal(t, "Not/AZone", result.Timezone)
}
