package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kosherspots/kosherspots-api/internal/models"
)

const restaurantColumns = `id, name, address, city, state, zip, phone, certifying_agency, kosher_category,
hours_open, latitude, longitude, google_rating, google_review_count, website, image_url, active, created_at, updated_at`

// RestaurantRepository persists directory entries.
type RestaurantRepository struct {
	db *sqlx.DB
}

// NewRestaurantRepository constructs a restaurant repository.
func NewRestaurantRepository(db *sqlx.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

// List returns restaurants matching the filter plus the total count.
func (r *RestaurantRepository) List(ctx context.Context, filter models.RestaurantFilter) ([]models.Restaurant, int, error) {
	where := []string{"1=1"}
	args := []interface{}{}

	if filter.Search != "" {
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR address ILIKE $%d)", len(args)+1, len(args)+1))
		args = append(args, "%"+filter.Search+"%")
	}
	if filter.City != "" {
		where = append(where, fmt.Sprintf("LOWER(city) = LOWER($%d)", len(args)+1))
		args = append(args, filter.City)
	}
	if filter.State != "" {
		where = append(where, fmt.Sprintf("UPPER(state) = UPPER($%d)", len(args)+1))
		args = append(args, filter.State)
	}
	if filter.Category != nil {
		where = append(where, fmt.Sprintf("kosher_category = $%d", len(args)+1))
		args = append(args, string(*filter.Category))
	}
	if filter.Agency != "" {
		where = append(where, fmt.Sprintf("certifying_agency ILIKE $%d", len(args)+1))
		args = append(args, filter.Agency)
	}
	if filter.MinRating != nil {
		where = append(where, fmt.Sprintf("google_rating >= $%d", len(args)+1))
		args = append(args, *filter.MinRating)
	}
	if filter.Active != nil {
		where = append(where, fmt.Sprintf("active = $%d", len(args)+1))
		args = append(args, *filter.Active)
	}
	whereClause := strings.Join(where, " AND ")

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 200 {
		size = 25
	}
	offset := (page - 1) * size

	orderBy := sortColumn(filter.SortBy)
	direction := "ASC"
	if strings.EqualFold(filter.SortOrder, "desc") {
		direction = "DESC"
	}

	query := fmt.Sprintf(`SELECT %s FROM restaurants WHERE %s ORDER BY %s %s LIMIT %d OFFSET %d`,
		restaurantColumns, whereClause, orderBy, direction, size, offset)
	var restaurants []models.Restaurant
	if err := r.db.SelectContext(ctx, &restaurants, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list restaurants: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM restaurants WHERE %s", whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count restaurants: %w", err)
	}
	return restaurants, total, nil
}

// GetByID fetches one restaurant.
func (r *RestaurantRepository) GetByID(ctx context.Context, id string) (*models.Restaurant, error) {
	query := fmt.Sprintf("SELECT %s FROM restaurants WHERE id = $1", restaurantColumns)
	var restaurant models.Restaurant
	if err := r.db.GetContext(ctx, &restaurant, query, id); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// Create inserts a restaurant.
func (r *RestaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	if restaurant.ID == "" {
		restaurant.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if restaurant.CreatedAt.IsZero() {
		restaurant.CreatedAt = now
	}
	restaurant.UpdatedAt = now

	query := `INSERT INTO restaurants (id, name, address, city, state, zip, phone, certifying_agency, kosher_category,
hours_open, latitude, longitude, google_rating, google_review_count, website, image_url, active, created_at, updated_at)
VALUES (:id, :name, :address, :city, :state, :zip, :phone, :certifying_agency, :kosher_category,
:hours_open, :latitude, :longitude, :google_rating, :google_review_count, :website, :image_url, :active, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, restaurant); err != nil {
		return fmt.Errorf("create restaurant: %w", err)
	}
	return nil
}

// Update rewrites a restaurant row.
func (r *RestaurantRepository) Update(ctx context.Context, restaurant *models.Restaurant) error {
	restaurant.UpdatedAt = time.Now().UTC()
	query := `UPDATE restaurants SET name = :name, address = :address, city = :city, state = :state, zip = :zip,
phone = :phone, certifying_agency = :certifying_agency, kosher_category = :kosher_category, hours_open = :hours_open,
latitude = :latitude, longitude = :longitude, google_rating = :google_rating, google_review_count = :google_review_count,
website = :website, image_url = :image_url, active = :active, updated_at = :updated_at
WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, restaurant); err != nil {
		return fmt.Errorf("update restaurant: %w", err)
	}
	return nil
}

// Delete removes a restaurant.
func (r *RestaurantRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM restaurants WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete restaurant: %w", err)
	}
	return nil
}

// DistinctCities lists the cities present in the directory, for filter UIs.
func (r *RestaurantRepository) DistinctCities(ctx context.Context) ([]string, error) {
	var cities []string
	query := "SELECT DISTINCT city FROM restaurants WHERE active = true ORDER BY city ASC"
	if err := r.db.SelectContext(ctx, &cities, query); err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	return cities, nil
}

func sortColumn(requested string) string {
	switch requested {
	case "name", "city", "state", "google_rating", "created_at", "updated_at":
		return requested
	default:
		return "name"
	}
}
