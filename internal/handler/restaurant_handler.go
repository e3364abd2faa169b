package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kosherspots/kosherspots-api/internal/dto"
	"github.com/kosherspots/kosherspots-api/internal/models"
	appErrors "github.com/kosherspots/kosherspots-api/pkg/errors"
	"github.com/kosherspots/kosherspots-api/pkg/response"
)

type restaurantDirectory interface {
	List(ctx context.Context, filter models.RestaurantFilter) ([]models.Restaurant, *models.Pagination, error)
	Get(ctx context.Context, id string) (*models.Restaurant, error)
	Create(ctx context.Context, req dto.CreateRestaurantRequest) (*dto.CreateRestaurantResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateRestaurantRequest) (*models.Restaurant, *dto.HoursWarning, error)
	Delete(ctx context.Context, id string) error
	Cities(ctx context.Context) ([]string, error)
}

type statusEvaluator interface {
	Evaluate(restaurant *models.Restaurant) models.RestaurantStatus
	Decorate(restaurants []models.Restaurant) []dto.RestaurantWithStatus
}

// RestaurantHandler exposes the directory endpoints.
type RestaurantHandler struct {
	restaurants restaurantDirectory
	status      statusEvaluator
	logger      *zap.Logger
}

// NewRestaurantHandler constructs the handler.
func NewRestaurantHandler(restaurants restaurantDirectory, status statusEvaluator, logger *zap.Logger) *RestaurantHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RestaurantHandler{restaurants: restaurants, status: status, logger: logger}
}

// List godoc
// @Summary List restaurants
// @Tags Restaurants
// @Produce json
// @Param search query string false "Name or address substring"
// @Param city query string false "City"
// @Param state query string false "Two-letter state"
// @Param category query string false "meat|dairy|pareve"
// @Param agency query string false "Certifying agency"
// @Param min_rating query number false "Minimum Google rating"
// @Param with_status query boolean false "Attach computed open/closed status"
// @Param page query integer false "Page"
// @Param limit query integer false "Page size"
// @Success 200 {object} response.Envelope
// @Router /restaurants [get]
func (h *RestaurantHandler) List(c *gin.Context) {
	filter, err := parseListFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	restaurants, pagination, err := h.restaurants.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	if c.Query("with_status") == "true" {
		response.JSON(c, http.StatusOK, h.status.Decorate(restaurants), pagination)
		return
	}
	response.JSON(c, http.StatusOK, restaurants, pagination)
}

// Get godoc
// @Summary Fetch one restaurant
// @Tags Restaurants
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} response.Envelope
// @Router /restaurants/{id} [get]
func (h *RestaurantHandler) Get(c *gin.Context) {
	restaurant, err := h.restaurants.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, restaurant, nil)
}

// Status godoc
// @Summary Compute current open/closed status
// @Tags Restaurants
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} response.Envelope
// @Router /restaurants/{id}/status [get]
func (h *RestaurantHandler) Status(c *gin.Context) {
	restaurant, err := h.restaurants.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	status := h.status.Evaluate(restaurant)
	response.JSON(c, http.StatusOK, status, nil)
}

// Cities godoc
// @Summary List cities with active entries
// @Tags Restaurants
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /restaurants/cities [get]
func (h *RestaurantHandler) Cities(c *gin.Context) {
	cities, err := h.restaurants.Cities(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, cities, nil)
}

// Create godoc
// @Summary Create a restaurant
// @Tags Restaurants
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param payload body dto.CreateRestaurantRequest true "Restaurant"
// @Success 201 {object} response.Envelope
// @Router /restaurants [post]
func (h *RestaurantHandler) Create(c *gin.Context) {
	if claims := claimsFromContext(c); claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}

	created, err := h.restaurants.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// Update godoc
// @Summary Update a restaurant
// @Tags Restaurants
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param payload body dto.UpdateRestaurantRequest true "Patch"
// @Success 200 {object} response.Envelope
// @Router /restaurants/{id} [put]
func (h *RestaurantHandler) Update(c *gin.Context) {
	if claims := claimsFromContext(c); claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}

	restaurant, warning, err := h.restaurants.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	payload := gin.H{"restaurant": restaurant}
	if warning != nil {
		payload["hours_warning"] = warning
	}
	response.JSON(c, http.StatusOK, payload, nil)
}

// Delete godoc
// @Summary Delete a restaurant
// @Tags Restaurants
// @Security BearerAuth
// @Param id path string true "Restaurant ID"
// @Success 204 "No Content"
// @Router /restaurants/{id} [delete]
func (h *RestaurantHandler) Delete(c *gin.Context) {
	if claims := claimsFromContext(c); claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	if err := h.restaurants.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func parseListFilter(c *gin.Context) (models.RestaurantFilter, error) {
	filter := models.RestaurantFilter{
		Search:    strings.TrimSpace(c.Query("search")),
		City:      strings.TrimSpace(c.Query("city")),
		State:     strings.TrimSpace(c.Query("state")),
		Agency:    strings.TrimSpace(c.Query("agency")),
		SortBy:    c.Query("sort"),
		SortOrder: c.Query("order"),
	}

	if raw := c.Query("category"); raw != "" {
		category := models.KosherCategory(strings.ToLower(raw))
		switch category {
		case models.CategoryMeat, models.CategoryDairy, models.CategoryPareve:
			filter.Category = &category
		default:
			return filter, appErrors.Clone(appErrors.ErrValidation, "category must be meat, dairy or pareve")
		}
	}

	if raw := c.Query("min_rating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil || rating < 0 || rating > 5 {
			return filter, appErrors.Clone(appErrors.ErrValidation, "min_rating must be a number between 0 and 5")
		}
		filter.MinRating = &rating
	}

	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, appErrors.Clone(appErrors.ErrValidation, "active must be a boolean")
		}
		filter.Active = &active
	}

	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.PageSize, _ = strconv.Atoi(c.DefaultQuery("limit", "25"))
	return filter, nil
}
