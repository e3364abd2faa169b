package models

import "time"

// RestaurantStatus is the wire form of an open/closed evaluation. It is
// computed per request and never persisted.
type RestaurantStatus struct {
	IsOpen       bool       `json:"is_open"`
	Status       string     `json:"status"`
	StatusReason string     `json:"status_reason"`
	CurrentTime  time.Time  `json:"current_time_local"`
	Timezone     string     `json:"timezone"`
	NextOpenTime *time.Time `json:"next_open_time,omitempty"`
	HoursParsed  bool       `json:"hours_parsed"`
}
