package enums

import "fmt"

// OrderMode selects which readiness rules and lifecycle path apply to an order.
type OrderMode string

const (
	OrderModeDelivery OrderMode = "delivery"
	OrderModePickup   OrderMode = "pickup"
)

var validOrderModes = []OrderMode{
	OrderModeDelivery,
	OrderModePickup,
}

// String implements fmt.Stringer.
func (o OrderMode) String() string {
	return string(o)
}

// IsValid reports whether the value is a known OrderMode.
func (o OrderMode) IsValid() bool {
	for _, candidate := range validOrderModes {
		if candidate == o {
			return true
		}
	}
	return false
}

// ParseOrderMode converts raw input into an OrderMode.
func ParseOrderMode(value string) (OrderMode, error) {
	for _, candidate := range validOrderModes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order mode %q", value)
}
