package dto

import "github.com/kosherspots/kosherspots-api/internal/models"

// CreateRestaurantRequest is the payload for adding a directory entry.
type CreateRestaurantRequest struct {
	Name              string   `json:"name" binding:"required" validate:"required,min=2"`
	Address           string   `json:"address" binding:"required" validate:"required"`
	City              string   `json:"city" binding:"required" validate:"required"`
	State             string   `json:"state" binding:"required" validate:"required,us_state"`
	Zip               string   `json:"zip" validate:"omitempty,len=5"`
	Phone             string   `json:"phone"`
	CertifyingAgency  string   `json:"certifying_agency" binding:"required" validate:"required"`
	KosherCategory    string   `json:"kosher_category" binding:"required" validate:"required,oneof=meat dairy pareve"`
	HoursOpen         *string  `json:"hours_open"`
	Latitude          *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude         *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	GoogleRating      *float64 `json:"google_rating" validate:"omitempty,gte=0,lte=5"`
	GoogleReviewCount int      `json:"google_review_count" validate:"gte=0"`
	Website           *string  `json:"website" validate:"omitempty,url"`
	ImageURL          *string  `json:"image_url" validate:"omitempty,url"`
}

// UpdateRestaurantRequest patches an existing entry; nil fields are untouched.
type UpdateRestaurantRequest struct {
	Name              *string  `json:"name" validate:"omitempty,min=2"`
	Address           *string  `json:"address"`
	City              *string  `json:"city"`
	State             *string  `json:"state" validate:"omitempty,us_state"`
	Zip               *string  `json:"zip" validate:"omitempty,len=5"`
	Phone             *string  `json:"phone"`
	CertifyingAgency  *string  `json:"certifying_agency"`
	KosherCategory    *string  `json:"kosher_category" validate:"omitempty,oneof=meat dairy pareve"`
	HoursOpen         *string  `json:"hours_open"`
	Latitude          *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude         *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	GoogleRating      *float64 `json:"google_rating" validate:"omitempty,gte=0,lte=5"`
	GoogleReviewCount *int     `json:"google_review_count" validate:"omitempty,gte=0"`
	Website           *string  `json:"website" validate:"omitempty,url"`
	ImageURL          *string  `json:"image_url" validate:"omitempty,url"`
	Active            *bool    `json:"active"`
}

// RestaurantWithStatus decorates a listing row with its computed status.
type RestaurantWithStatus struct {
	models.Restaurant
	CurrentStatus *models.RestaurantStatus `json:"current_status,omitempty"`
}

// HoursWarning flags stored hours text that the parser cannot understand.
// The row is persisted anyway; listings degrade to UNKNOWN status.
type HoursWarning struct {
	Unparseable bool   `json:"unparseable"`
	Message     string `json:"message,omitempty"`
}

// CreateRestaurantResponse returns the stored entry plus any hours warning.
type CreateRestaurantResponse struct {
	Restaurant models.Restaurant `json:"restaurant"`
	Warning    *HoursWarning     `json:"hours_warning,omitempty"`
}
