package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kosherspots/kosherspots-api/internal/models"
)

func newRestaurantMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func restaurantRows() *sqlmock.Rows {
	hours := "Mon-Fri 9AM-5PM"
	return sqlmock.NewRows([]string{
		"id", "name", "address", "city", "state", "zip", "phone", "certifying_agency", "kosher_category",
		"hours_open", "latitude", "longitude", "google_rating", "google_review_count", "website", "image_url",
		"active", "created_at", "updated_at",
	}).AddRow("r-1", "Grill Point", "69-54 Main St", "Flushing", "NY", "11367", "718-555-0100", "Vaad of Queens", "meat",
		hours, 40.72, -73.82, 4.4, 812, nil, nil, true, time.Now(), time.Now())
}

func TestRestaurantRepositoryList(t *testing.T) {
	db, mock, cleanup := newRestaurantMock(t)
	defer cleanup()
	repo := NewRestaurantRepository(db)

	mock.ExpectQuery("SELECT id, name, address, city, state, zip, phone").
		WillReturnRows(restaurantRows())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM restaurants WHERE 1=1")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	restaurants, total, err := repo.List(context.Background(), models.RestaurantFilter{})
	require.NoError(t, err)
	assert.Len(t, restaurants, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Grill Point", restaurants[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRestaurantRepositoryListFilters(t *testing.T) {
	db, mock, cleanup := newRestaurantMock(t)
	defer cleanup()
	repo := NewRestaurantRepository(db)

	category := models.CategoryMeat
	minRating := 4.0

	mock.ExpectQuery("SELECT id, name, address, city, state, zip, phone").
		WithArgs("%grill%", "Flushing", "NY", "meat", minRating).
		WillReturnRows(restaurantRows())
	mock.ExpectQuery("SELECT COUNT").
		WithArgs("%grill%", "Flushing", "NY", "meat", minRating).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, total, err := repo.List(context.Background(), models.RestaurantFilter{
		Search:    "grill",
		City:      "Flushing",
		State:     "NY",
		Category:  &category,
		MinRating: &minRating,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRestaurantRepositoryGetByID(t *testing.T) {
	db, mock, cleanup := newRestaurantMock(t)
	defer cleanup()
	repo := NewRestaurantRepository(db)

	mock.ExpectQuery("SELECT id, name, address, city, state, zip, phone").
		WithArgs("r-1").
		WillReturnRows(restaurantRows())

	restaurant, err := repo.GetByID(context.Background(), "r-1")
	require.NoError(t, err)
	assert.Equal(t, "r-1", restaurant.ID)
	assert.Equal(t, models.CategoryMeat, restaurant.KosherCategory)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRestaurantRepositoryCreateAssignsID(t *testing.T) {
	db, mock, cleanup := newRestaurantMock(t)
	defer cleanup()
	repo := NewRestaurantRepository(db)

	mock.ExpectExec("INSERT INTO restaurants").
		WillReturnResult(sqlmock.NewResult(1, 1))

	restaurant := &models.Restaurant{Name: "Grill Point", Address: "69-54 Main St", City: "Flushing", State: "NY",
		CertifyingAgency: "Vaad of Queens", KosherCategory: models.CategoryMeat, Active: true}
	err := repo.Create(context.Background(), restaurant)
	require.NoError(t, err)
	assert.NotEmpty(t, restaurant.ID)
	assert.False(t, restaurant.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRestaurantRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRestaurantMock(t)
	defer cleanup()
	repo := NewRestaurantRepository(db)

	mock.ExpectExec("DELETE FROM restaurants WHERE id").
		WithArgs("r-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "r-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRestaurantRepositoryDistinctCities(t *testing.T) {
	db, mock, cleanup := newRestaurantMock(t)
	defer cleanup()
	repo := NewRestaurantRepository(db)

	mock.ExpectQuery("SELECT DISTINCT city FROM restaurants").
		WillReturnRows(sqlmock.NewRows([]string{"city"}).AddRow("Brooklyn").AddRow("Flushing"))

	cities, err := repo.DistinctCities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Brooklyn", "Flushing"}, cities)
	assert.NoError(t, mock.ExpectationsWereMet())
}
