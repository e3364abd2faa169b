package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kosherspots/kosherspots-api/internal/models"
)

func strptr(s string) *string { return &s }

func f64ptr(v float64) *float64 { return &v }
func pinned(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestStatusServiceEvaluateOpen(t *testing.T) {
	// Monday 2024-06-03 12:00 Eastern == 16:00 UTC.
	now := time.Date(2024, 6, 3, 16, 0, 0, 0, time.UTC)
	svc := NewStatusService(pinned(now), nil, nil)

	restaurant := &models.Restaurant{
		ID:        "r-1",
		City:      "Brooklyn",
		State:     "NY",
		HoursOpen: strptr("Mon-Fri 9AM-5PM"),
	}

	status := svc.Evaluate(restaurant)
	assert.True(t, status.IsOpen)
	assert.Equal(t, "OPEN", status.Status)
	assert.Equal(t, "America/New_York", status.Timezone)
	assert.True(t, status.HoursParsed)
}

func TestStatusServiceEvaluateUsesCoordinates(t *testing.T) {
	// 21:00 UTC Monday: 14:00 in Los Angeles, 17:00 in New York.
	now := time.Date(2024, 6, 3, 21, 0, 0, 0, time.UTC)
	svc := NewStatusService(pinned(now), nil, nil)

	restaurant := &models.Restaurant{
		ID:        "r-2",
		City:      "New York", // stale city data; coordinates must win
		State:     "NY",
		Latitude:  f64ptr(34.0522),
		Longitude: f64ptr(-118.2437),
		HoursOpen: strptr("Monday: 9:00 AM - 5:00 PM"),
	}

	status := svc.Evaluate(restaurant)
	assert.Equal(t, "America/Los_Angeles", status.Timezone)
	assert.True(t, status.IsOpen)
}

func TestStatusServiceEvaluateMissingHours(t *testing.T) {
	svc := NewStatusService(pinned(time.Date(2024, 6, 3, 16, 0, 0, 0, time.UTC)), nil, nil)

	for _, hoursOpen := range []*string{nil, strptr(""), strptr("None")} {
		status := svc.Evaluate(&models.Restaurant{ID: "r-3", HoursOpen: hoursOpen})
		assert.Equal(t, "UNKNOWN", status.Status)
		assert.False(t, status.IsOpen)
		assert.False(t, status.HoursParsed)
		assert.Nil(t, status.NextOpenTime)
	}
}

func TestStatusServiceEvaluateUnparseableHours(t *testing.T) {
	svc := NewStatusService(pinned(time.Date(2024, 6, 3, 16, 0, 0, 0, time.UTC)), nil, nil)

	status := svc.Evaluate(&models.Restaurant{
		ID:        "r-4",
		HoursOpen: strptr("Open when we feel like it"),
	})
	assert.Equal(t, "UNKNOWN", status.Status)
	assert.False(t, status.HoursParsed)
	assert.NotEmpty(t, status.StatusReason)
}

func TestStatusServiceEvaluateRecordsMetrics(t *testing.T) {
	metrics := NewMetricsService()
	svc := NewStatusService(pinned(time.Date(2024, 6, 3, 16, 0, 0, 0, time.UTC)), metrics, nil)

	svc.Evaluate(&models.Restaurant{ID: "r-5", HoursOpen: strptr("24/7")})
	svc.Evaluate(&models.Restaurant{ID: "r-6"})

	snapshot := metrics.Snapshot()
	assert.Equal(t, uint64(2), snapshot.StatusEvaluations)
}

func TestStatusServiceDecorate(t *testing.T) {
	now := time.Date(2024, 6, 3, 16, 0, 0, 0, time.UTC)
	svc := NewStatusService(pinned(now), nil, nil)

	restaurants := []models.Restaurant{
		{ID: "r-1", City: "Brooklyn", State: "NY", HoursOpen: strptr("Mon-Fri 9AM-5PM")},
		{ID: "r-2", City: "Brooklyn", State: "NY"},
	}

	decorated := svc.Decorate(restaurants)
	require.Len(t, decorated, 2)
	require.NotNil(t, decorated[0].CurrentStatus)
	assert.Equal(t, "OPEN", decorated[0].CurrentStatus.Status)
	require.NotNil(t, decorated[1].CurrentStatus)
	assert.Equal(t, "UNKNOWN", decorated[1].CurrentStatus.Status)
}
