package models

import "time"

// KosherCategory classifies the kitchen of a listed restaurant.
type KosherCategory string

const (
	CategoryMeat   KosherCategory = "meat"
	CategoryDairy  KosherCategory = "dairy"
	CategoryPareve KosherCategory = "pareve"
)

// Restaurant is one listed establishment in the directory. HoursOpen holds
// the raw hours text exactly as certified sources publish it; status
// decoration is applied at render time only.
type Restaurant struct {
	ID                string         `db:"id" json:"id"`
	Name              string         `db:"name" json:"name"`
	Address           string         `db:"address" json:"address"`
	City              string         `db:"city" json:"city"`
	State             string         `db:"state" json:"state"`
	Zip               string         `db:"zip" json:"zip"`
	Phone             string         `db:"phone" json:"phone"`
	CertifyingAgency  string         `db:"certifying_agency" json:"certifying_agency"`
	KosherCategory    KosherCategory `db:"kosher_category" json:"kosher_category"`
	HoursOpen         *string        `db:"hours_open" json:"hours_open,omitempty"`
	Latitude          *float64       `db:"latitude" json:"latitude,omitempty"`
	Longitude         *float64       `db:"longitude" json:"longitude,omitempty"`
	GoogleRating      *float64       `db:"google_rating" json:"google_rating,omitempty"`
	GoogleReviewCount int            `db:"google_review_count" json:"google_review_count"`
	Website           *string        `db:"website" json:"website,omitempty"`
	ImageURL          *string        `db:"image_url" json:"image_url,omitempty"`
	Active            bool           `db:"active" json:"active"`
	CreatedAt         time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at" json:"updated_at"`
}

// RestaurantFilter narrows down directory listings.
type RestaurantFilter struct {
	Search    string
	City      string
	State     string
	Category  *KosherCategory
	Agency    string
	MinRating *float64
	Active    *bool
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
