package hours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekdayLines(t *testing.T) {
	spec, ok := Parse("Monday: 9:00 AM - 5:00 PM\nTuesday: 9:00 AM - 5:00 PM")
	require.True(t, ok)
	require.NotNil(t, spec)

	monday := spec.Intervals(time.Monday)
	require.Len(t, monday, 1)
	assert.Equal(t, Clock{Hour: 9}, monday[0].Open)
	assert.Equal(t, Clock{Hour: 17}, monday[0].Close)
	assert.False(t, monday[0].CrossesMidnight())

	assert.Len(t, spec.Intervals(time.Tuesday), 1)
	assert.Empty(t, spec.Intervals(time.Wednesday))
	assert.Empty(t, spec.Intervals(time.Sunday))
}

func TestParseWeekdayLinesCommaSeparated(t *testing.T) {
	spec, ok := Parse("Mon: 11 - 3, Fri: 10:30 AM - 2:30 PM")
	require.True(t, ok)

	mon := spec.Intervals(time.Monday)
	require.Len(t, mon, 1)
	assert.Equal(t, Clock{Hour: 11}, mon[0].Open)
	assert.Equal(t, Clock{Hour: 3}, mon[0].Close)
	assert.True(t, mon[0].CrossesMidnight())

	fri := spec.Intervals(time.Friday)
	require.Len(t, fri, 1)
	assert.Equal(t, Clock{Hour: 10, Minute: 30}, fri[0].Open)
	assert.Equal(t, Clock{Hour: 14, Minute: 30}, fri[0].Close)
}

func TestParseCompactDayRanges(t *testing.T) {
	spec, ok := Parse("Mon-Fri 9AM-5PM, Sat 10AM-2PM")
	require.True(t, ok)

	for day := time.Monday; day <= time.Friday; day++ {
		ivs := spec.Intervals(day)
		require.Len(t, ivs, 1, "weekday %s", day)
		assert.Equal(t, Clock{Hour: 9}, ivs[0].Open)
		assert.Equal(t, Clock{Hour: 17}, ivs[0].Close)
	}

	sat := spec.Intervals(time.Saturday)
	require.Len(t, sat, 1)
	assert.Equal(t, Clock{Hour: 10}, sat[0].Open)
	assert.Equal(t, Clock{Hour: 14}, sat[0].Close)
	assert.Empty(t, spec.Intervals(time.Sunday))
}

func TestParseWrappingDayRange(t *testing.T) {
	spec, ok := Parse("Fri-Mon 8:00-22:00")
	require.True(t, ok)

	for _, day := range []time.Weekday{time.Friday, time.Saturday, time.Sunday, time.Monday} {
		assert.Len(t, spec.Intervals(day), 1, "weekday %s", day)
	}
	assert.Empty(t, spec.Intervals(time.Tuesday))
}

func TestParseAllDayLiterals(t *testing.T) {
	for _, raw := range []string{"24 hours", "24/7", "Daily: 24 hours", "Open 24 Hours"} {
		spec, ok := Parse(raw)
		require.True(t, ok, "input %q", raw)
		for day := time.Sunday; day <= time.Saturday; day++ {
			ivs := spec.Intervals(day)
			require.Len(t, ivs, 1, "input %q weekday %s", raw, day)
			assert.True(t, ivs[0].FullDay(), "input %q weekday %s", raw, day)
		}
	}
}

func TestParseFailure(t *testing.T) {
	cases := []string{
		"",
		"None",
		"Open when we feel like it",
		"call for hours",
		"Monday: sometime - late",
		"Funday: 9 - 5",
	}
	for _, raw := range cases {
		spec, ok := Parse(raw)
		assert.False(t, ok, "input %q", raw)
		assert.Nil(t, spec, "input %q", raw)
	}
}

func TestParseStripsStatusGlyphs(t *testing.T) {
	spec, ok := Parse("\U0001F7E2 Monday: 9:00 AM - 5:00 PM")
	require.True(t, ok)
	assert.Len(t, spec.Intervals(time.Monday), 1)
}

func TestParse24HourNotation(t *testing.T) {
	spec, ok := Parse("Sunday: 08:30 - 21:00")
	require.True(t, ok)

	sun := spec.Intervals(time.Sunday)
	require.Len(t, sun, 1)
	assert.Equal(t, Clock{Hour: 8, Minute: 30}, sun[0].Open)
	assert.Equal(t, Clock{Hour: 21}, sun[0].Close)
}

func TestParseClockForms(t *testing.T) {
	cases := []struct {
		raw  string
		want Clock
	}{
		{"9", Clock{Hour: 9}},
		{"9:15", Clock{Hour: 9, Minute: 15}},
		{"9AM", Clock{Hour: 9}},
		{"9 PM", Clock{Hour: 21}},
		{"12 AM", Clock{Hour: 0}},
		{"12 PM", Clock{Hour: 12}},
		{"11:45 p.m.", Clock{Hour: 23, Minute: 45}},
		{"23:05", Clock{Hour: 23, Minute: 5}},
	}
	for _, tc := range cases {
		got, ok := parseClock(tc.raw)
		require.True(t, ok, "input %q", tc.raw)
		assert.Equal(t, tc.want, got, "input %q", tc.raw)
	}

	for _, raw := range []string{"25:00", "13 PM", "9:75", "noonish", ""} {
		_, ok := parseClock(raw)
		assert.False(t, ok, "input %q", raw)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	inputs := []string{
		"Monday: 9:00 AM - 5:00 PM\nTuesday: 11:00 AM - 2:00 AM",
		"Mon-Fri 9AM-5PM, Sat 10AM-2PM",
		"24/7",
	}
	for _, raw := range inputs {
		spec, ok := Parse(raw)
		require.True(t, ok, "input %q", raw)

		reparsed, ok := Parse(spec.Format())
		require.True(t, ok, "formatted %q", spec.Format())
		assert.True(t, spec.Equal(reparsed), "round trip of %q via %q", raw, spec.Format())
	}
}

func TestSpecEmpty(t *testing.T) {
	assert.True(t, (&Spec{}).Empty())
	assert.True(t, (*Spec)(nil).Empty())

	spec := &Spec{}
	spec.Add(time.Sunday, Interval{Open: Clock{Hour: 10}, Close: Clock{Hour: 15}})
	assert.False(t, spec.Empty())
}
