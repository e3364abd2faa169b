package hours

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }

func TestResolveTimezoneFromCoordinates(t *testing.T) {
	cases := []struct {
		name     string
		lat, lng float64
		want     string
	}{
		{"Miami", 25.7617, -80.1918, "America/New_York"},
		{"Brooklyn", 40.6782, -73.9442, "America/New_York"},
		{"Chicago", 41.8781, -87.6298, "America/Chicago"},
		{"Austin", 30.2672, -97.7431, "America/Chicago"},
		{"Denver", 39.7392, -104.9903, "America/Denver"},
		{"Los Angeles", 34.0522, -118.2437, "America/Los_Angeles"},
		{"Seattle", 47.6062, -122.3321, "America/Los_Angeles"},
		{"Anchorage", 61.2181, -149.9003, "America/Anchorage"},
		{"Honolulu", 21.3069, -157.8583, "Pacific/Honolulu"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveTimezone(fptr(tc.lat), fptr(tc.lng), "", "")
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveTimezoneCoordinatesBeatCityState(t *testing.T) {
	got := ResolveTimezone(fptr(34.0522), fptr(-118.2437), "New York", "NY")
	assert.Equal(t, "America/Los_Angeles", got)
}

func TestResolveTimezoneInvalidCoordinatesFallThrough(t *testing.T) {
	assert.Equal(t, "America/Denver", ResolveTimezone(fptr(120), fptr(-300), "Denver", "CO"))
	// Null-island coordinates are treated as unset.
	assert.Equal(t, "America/Chicago", ResolveTimezone(fptr(0), fptr(0), "Chicago", "IL"))
}

func TestResolveTimezoneFromCityState(t *testing.T) {
	cases := []struct {
		city, state string
		want        string
	}{
		{"Denver", "CO", "America/Denver"},
		{"New York", "NY", "America/New_York"},
		{"Lakewood", "NJ", "America/New_York"},
		{"Austin", "TX", "America/Chicago"},
		{"Phoenix", "AZ", "America/Phoenix"},
		{"Seattle", "WA", "America/Los_Angeles"},
		// Unknown city, known state: state fallback decides.
		{"Smallville", "IL", "America/Chicago"},
		// Full state name instead of the two-letter code.
		{"Denver", "Colorado", "America/Denver"},
	}
	for _, tc := range cases {
		got := ResolveTimezone(nil, nil, tc.city, tc.state)
		assert.Equal(t, tc.want, got, "%s, %s", tc.city, tc.state)
	}
}

func TestResolveTimezoneDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, ResolveTimezone(nil, nil, "", ""))
	assert.Equal(t, DefaultTimezone, ResolveTimezone(nil, nil, "Atlantis", "ZZ"))
}
