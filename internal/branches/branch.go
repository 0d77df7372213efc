package branches

import "github.com/huynhtrandev/brewpoint-backend/pkg/types"

// OpeningHours is a same-day [Open, Close) window in "HH:MM" wall-clock time.
type OpeningHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
	Days  string `json:"days"`
}

// Branch is a physical servicing location with its own hours, radius, and fee
// schedule. Branches are defined at process start and immutable at runtime;
// admin edits happen outside this service.
type Branch struct {
	ID                    string           `json:"id"`
	Name                  string           `json:"name"`
	Address               string           `json:"address"`
	District              string           `json:"district"`
	City                  string           `json:"city"`
	Coord                 types.Coordinate `json:"coord"`
	DeliveryRadiusKm      float64          `json:"delivery_radius_km"`
	BaseDeliveryFee       int              `json:"base_delivery_fee"`
	ExtraFeePerKm         int              `json:"extra_fee_per_km"`
	FreeShippingThreshold int              `json:"free_shipping_threshold"`
	PrepTimeMins          int              `json:"prep_time_mins"`
	DeliveryTimeMins      int              `json:"delivery_time_mins"`
	OpeningHours          OpeningHours     `json:"opening_hours"`
	IsActive              bool             `json:"is_active"`
}
