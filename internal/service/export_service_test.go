package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kosherspots/kosherspots-api/internal/models"
	appErrors "github.com/kosherspots/kosherspots-api/pkg/errors"
)

type fakeExportLister struct {
	restaurants []models.Restaurant
	gotFilter   models.RestaurantFilter
}

func (f *fakeExportLister) List(_ context.Context, filter models.RestaurantFilter) ([]models.Restaurant, int, error) {
	f.gotFilter = filter
	return f.restaurants, len(f.restaurants), nil
}

func exportFixtures() []models.Restaurant {
	rating := 4.6
	hoursText := "Sun-Thu 11AM-10PM"
	return []models.Restaurant{
		{
			Name: "Grill Point", Address: "69-54 Main St", City: "Flushing", State: "NY",
			CertifyingAgency: "Vaad of Queens", KosherCategory: models.CategoryMeat,
			HoursOpen: &hoursText, GoogleRating: &rating,
		},
		{
			Name: "Milk n Honey", Address: "100 Central Ave", City: "Lawrence", State: "NY",
			CertifyingAgency: "Five Towns Vaad", KosherCategory: models.CategoryDairy,
		},
	}
}

func TestExportServiceRenderCSV(t *testing.T) {
	lister := &fakeExportLister{restaurants: exportFixtures()}
	svc := NewExportService(lister, 100, nil)

	result, err := svc.Render(context.Background(), ExportCSV, models.RestaurantFilter{City: "Flushing"})
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.Equal(t, "restaurants.csv", result.Filename)

	lines := strings.Split(strings.TrimSpace(string(result.Data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Name,Address,City,State,Agency,Category,Hours,Rating", lines[0])
	assert.Contains(t, lines[1], "Grill Point")
	assert.Contains(t, lines[1], "Sun-Thu 11AM-10PM")
	assert.Contains(t, lines[1], "4.6")
	assert.Contains(t, lines[2], "Milk n Honey")

	// The incoming filter survives, only the page window is overridden.
	assert.Equal(t, "Flushing", lister.gotFilter.City)
	assert.Equal(t, 1, lister.gotFilter.Page)
	assert.Equal(t, 100, lister.gotFilter.PageSize)
}

func TestExportServiceRenderPDF(t *testing.T) {
	lister := &fakeExportLister{restaurants: exportFixtures()}
	svc := NewExportService(lister, 100, nil)

	result, err := svc.Render(context.Background(), ExportPDF, models.RestaurantFilter{})
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.Equal(t, "restaurants.pdf", result.Filename)
	assert.True(t, strings.HasPrefix(string(result.Data), "%PDF"))
}

func TestExportServiceRenderUnsupportedFormat(t *testing.T) {
	svc := NewExportService(&fakeExportLister{}, 100, nil)

	_, err := svc.Render(context.Background(), ExportFormat("xlsx"), models.RestaurantFilter{})
	appErr := appErrors.FromError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}
