package domain

import (
	"errors"
	"time"
)

var ErrRatePlanNotFound = errors.New("rate plan not found")
var ErrRatePlanExists = errors.New("rate plan already exists")

// SeasonalRate overrides the base rate for a date range.
type SeasonalRate struct {
	Name      string    `json:"name" bson:"name"`
	StartDate time.Time `json:"start_date" bson:"start_date"`
	EndDate   time.Time `json:"end_date" bson:"end_date"`
	Rate      float64   `json:"rate" bson:"rate"`
}

// ExtraBedPolicy captures whether an extra bed may be added and at what charge.
type ExtraBedPolicy struct {
	Allowed bool    `json:"allowed" bson:"allowed"`
	Charge  float64 `json:"charge" bson:"charge"`
}

// RatePlan is a pricing scheme attached to a room type.
// (Name, RoomTypeID) is unique.
type RatePlan struct {
	ID             string         `json:"id" bson:"_id,omitempty"`
	Name           string         `json:"name" bson:"name"`
	RoomTypeID     string         `json:"room_type_id" bson:"room_type_id"`
	Refundable     bool           `json:"refundable" bson:"refundable"`
	SeasonalRates  []SeasonalRate `json:"seasonal_rates" bson:"seasonal_rates"`
	ExtraBedPolicy ExtraBedPolicy `json:"extra_bed_policy" bson:"extra_bed_policy"`
	CreatedAt      time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" bson:"updated_at"`
}
