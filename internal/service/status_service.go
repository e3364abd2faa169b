package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/kosherspots/kosherspots-api/internal/dto"
	"github.com/kosherspots/kosherspots-api/internal/hours"
	"github.com/kosherspots/kosherspots-api/internal/models"
)

// StatusService computes live open/closed status for directory entries.
// Evaluation is pure: each call parses the stored hours text, resolves the
// acting timezone and evaluates against the injected clock, so the service
// is safe for concurrent use without locking.
type StatusService struct {
	now     func() time.Time
	metrics *MetricsService
	logger  *zap.Logger
}

// NewStatusService constructs a status service. A nil clock defaults to
// time.Now so real traffic uses the system clock while tests can pin it.
func NewStatusService(clock func() time.Time, metrics *MetricsService, logger *zap.Logger) *StatusService {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatusService{now: clock, metrics: metrics, logger: logger}
}

// Evaluate produces the current status for a restaurant.
func (s *StatusService) Evaluate(restaurant *models.Restaurant) models.RestaurantStatus {
	raw := ""
	if restaurant.HoursOpen != nil {
		raw = *restaurant.HoursOpen
	}

	spec, parsed := hours.Parse(raw)
	if !parsed && raw != "" {
		s.logger.Debug("hours text unparseable",
			zap.String("restaurant_id", restaurant.ID),
			zap.String("hours_open", raw))
	}

	timezone := hours.ResolveTimezone(restaurant.Latitude, restaurant.Longitude, restaurant.City, restaurant.State)
	result := hours.Evaluate(spec, timezone, s.now())

	if s.metrics != nil {
		s.metrics.RecordStatusEvaluation(string(result.Status))
	}

	return models.RestaurantStatus{
		IsOpen:       result.IsOpen,
		Status:       string(result.Status),
		StatusReason: result.Reason,
		CurrentTime:  result.LocalTime,
		Timezone:     result.Timezone,
		NextOpenTime: result.NextOpen,
		HoursParsed:  result.HoursParsed,
	}
}

// Decorate attaches computed status to a page of listings.
func (s *StatusService) Decorate(restaurants []models.Restaurant) []dto.RestaurantWithStatus {
	decorated := make([]dto.RestaurantWithStatus, 0, len(restaurants))
	for i := range restaurants {
		status := s.Evaluate(&restaurants[i])
		decorated = append(decorated, dto.RestaurantWithStatus{
			Restaurant:    restaurants[i],
			CurrentStatus: &status,
		})
	}
	return decorated
}
