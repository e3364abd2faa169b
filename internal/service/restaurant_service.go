package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kosherspots/kosherspots-api/internal/dto"
	"github.com/kosherspots/kosherspots-api/internal/hours"
	"github.com/kosherspots/kosherspots-api/internal/models"
	appErrors "github.com/kosherspots/kosherspots-api/pkg/errors"
)

const restaurantCachePrefix = "restaurants:list:"

type restaurantRepository interface {
	List(ctx context.Context, filter models.RestaurantFilter) ([]models.Restaurant, int, error)
	GetByID(ctx context.Context, id string) (*models.Restaurant, error)
	Create(ctx context.Context, restaurant *models.Restaurant) error
	Update(ctx context.Context, restaurant *models.Restaurant) error
	Delete(ctx context.Context, id string) error
	DistinctCities(ctx context.Context) ([]string, error)
}

// RestaurantService orchestrates directory reads and writes. Writes enforce
// the raw-hours boundary: status decoration never reaches storage.
type RestaurantService struct {
	repo     restaurantRepository
	cache    *CacheService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewRestaurantService constructs the restaurant service.
func NewRestaurantService(repo restaurantRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *RestaurantService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RestaurantService{repo: repo, cache: cache, validate: validate, logger: logger}
}

// NewValidator builds the validator with directory-specific rules registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("us_state", func(fl validator.FieldLevel) bool {
		code := strings.ToUpper(strings.TrimSpace(fl.Field().String()))
		return len(code) == 2 && isAlpha(code)
	})
	return v
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// List returns a page of restaurants, served from cache when possible.
func (s *RestaurantService) List(ctx context.Context, filter models.RestaurantFilter) ([]models.Restaurant, *models.Pagination, error) {
	type cachedPage struct {
		Restaurants []models.Restaurant `json:"restaurants"`
		Pagination  models.Pagination   `json:"pagination"`
	}

	key := listCacheKey(filter)
	if s.cache.Enabled() {
		var page cachedPage
		if hit, _ := s.cache.Get(ctx, key, &page); hit {
			return page.Restaurants, &page.Pagination, nil
		}
	}

	restaurants, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list restaurants")
	}

	pagination := &models.Pagination{
		Page:       max(filter.Page, 1),
		PageSize:   filter.PageSize,
		TotalCount: total,
	}
	if s.cache.Enabled() {
		_ = s.cache.Set(ctx, key, cachedPage{Restaurants: restaurants, Pagination: *pagination}, 0)
	}
	return restaurants, pagination, nil
}

// Get loads a single restaurant.
func (s *RestaurantService) Get(ctx context.Context, id string) (*models.Restaurant, error) {
	restaurant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "restaurant not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load restaurant")
	}
	return restaurant, nil
}

// Create validates and stores a new directory entry.
func (s *RestaurantService) Create(ctx context.Context, req dto.CreateRestaurantRequest) (*dto.CreateRestaurantResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid restaurant payload")
	}

	restaurant := &models.Restaurant{
		Name:              strings.TrimSpace(req.Name),
		Address:           strings.TrimSpace(req.Address),
		City:              strings.TrimSpace(req.City),
		State:             strings.ToUpper(strings.TrimSpace(req.State)),
		Zip:               req.Zip,
		Phone:             req.Phone,
		CertifyingAgency:  strings.TrimSpace(req.CertifyingAgency),
		KosherCategory:    models.KosherCategory(req.KosherCategory),
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		GoogleRating:      req.GoogleRating,
		GoogleReviewCount: req.GoogleReviewCount,
		Website:           req.Website,
		ImageURL:          req.ImageURL,
		Active:            true,
	}

	warning := s.applyHours(restaurant, req.HoursOpen)

	if err := s.repo.Create(ctx, restaurant); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create restaurant")
	}
	s.invalidateListings(ctx)

	return &dto.CreateRestaurantResponse{Restaurant: *restaurant, Warning: warning}, nil
}

// Update applies a partial patch to an existing entry.
func (s *RestaurantService) Update(ctx context.Context, id string, req dto.UpdateRestaurantRequest) (*models.Restaurant, *dto.HoursWarning, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid restaurant payload")
	}

	restaurant, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if req.Name != nil {
		restaurant.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		restaurant.Address = strings.TrimSpace(*req.Address)
	}
	if req.City != nil {
		restaurant.City = strings.TrimSpace(*req.City)
	}
	if req.State != nil {
		restaurant.State = strings.ToUpper(strings.TrimSpace(*req.State))
	}
	if req.Zip != nil {
		restaurant.Zip = *req.Zip
	}
	if req.Phone != nil {
		restaurant.Phone = *req.Phone
	}
	if req.CertifyingAgency != nil {
		restaurant.CertifyingAgency = strings.TrimSpace(*req.CertifyingAgency)
	}
	if req.KosherCategory != nil {
		restaurant.KosherCategory = models.KosherCategory(*req.KosherCategory)
	}
	if req.Latitude != nil {
		restaurant.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		restaurant.Longitude = req.Longitude
	}
	if req.GoogleRating != nil {
		restaurant.GoogleRating = req.GoogleRating
	}
	if req.GoogleReviewCount != nil {
		restaurant.GoogleReviewCount = *req.GoogleReviewCount
	}
	if req.Website != nil {
		restaurant.Website = req.Website
	}
	if req.ImageURL != nil {
		restaurant.ImageURL = req.ImageURL
	}
	if req.Active != nil {
		restaurant.Active = *req.Active
	}

	var warning *dto.HoursWarning
	if req.HoursOpen != nil {
		warning = s.applyHours(restaurant, req.HoursOpen)
	}

	if err := s.repo.Update(ctx, restaurant); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update restaurant")
	}
	s.invalidateListings(ctx)
	return restaurant, warning, nil
}

// Delete removes a directory entry.
func (s *RestaurantService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete restaurant")
	}
	s.invalidateListings(ctx)
	return nil
}

// Cities lists the distinct cities with active entries.
func (s *RestaurantService) Cities(ctx context.Context) ([]string, error) {
	cities, err := s.repo.DistinctCities(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list cities")
	}
	return cities, nil
}

// applyHours sanitises hours text at the write boundary: status glyphs and
// decoration never reach storage. Unparseable text is stored as-is but
// flagged, so listings degrade to UNKNOWN instead of rejecting the entry.
func (s *RestaurantService) applyHours(restaurant *models.Restaurant, raw *string) *dto.HoursWarning {
	if raw == nil {
		return nil
	}
	cleaned := sanitizeHours(*raw)
	if cleaned == "" {
		restaurant.HoursOpen = nil
		return nil
	}
	restaurant.HoursOpen = &cleaned

	if _, ok := hours.Parse(cleaned); !ok {
		s.logger.Warn("storing unparseable hours text",
			zap.String("restaurant", restaurant.Name),
			zap.String("hours_open", cleaned))
		return &dto.HoursWarning{
			Unparseable: true,
			Message:     "hours text does not match a recognized format; status will show as UNKNOWN",
		}
	}
	return nil
}

// sanitizeHours strips leading status decoration (emoji markers) and
// collapses surrounding whitespace.
func sanitizeHours(raw string) string {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimLeftFunc(trimmed, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.TrimSpace(trimmed)
}

func (s *RestaurantService) invalidateListings(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, restaurantCachePrefix+"*"); err != nil {
		s.logger.Warn("listing cache invalidation failed", zap.Error(err))
	}
}

func listCacheKey(filter models.RestaurantFilter) string {
	category := ""
	if filter.Category != nil {
		category = string(*filter.Category)
	}
	minRating := ""
	if filter.MinRating != nil {
		minRating = fmt.Sprintf("%.1f", *filter.MinRating)
	}
	active := ""
	if filter.Active != nil {
		active = fmt.Sprintf("%t", *filter.Active)
	}
	return fmt.Sprintf("%s%s|%s|%s|%s|%s|%s|%s|%d|%d|%s|%s",
		restaurantCachePrefix,
		strings.ToLower(filter.Search), strings.ToLower(filter.City), strings.ToUpper(filter.State),
		category, strings.ToLower(filter.Agency), minRating, active,
		filter.Page, filter.PageSize, filter.SortBy, filter.SortOrder)
}
