package enums

import "fmt"

// DrinkSize is the cup size chosen for a cart line.
type DrinkSize string

const (
	DrinkSizeSmall  DrinkSize = "S"
	DrinkSizeMedium DrinkSize = "M"
	DrinkSizeLarge  DrinkSize = "L"
)

var validDrinkSizes = []DrinkSize{
	DrinkSizeSmall,
	DrinkSizeMedium,
	DrinkSizeLarge,
}

// String implements fmt.Stringer.
func (d DrinkSize) String() string {
	return string(d)
}

// IsValid reports whether the value is a known DrinkSize.
func (d DrinkSize) IsValid() bool {
	for _, candidate := range validDrinkSizes {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDrinkSize converts raw input into a DrinkSize.
func ParseDrinkSize(value string) (DrinkSize, error) {
	for _, candidate := range validDrinkSizes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid drink size %q", value)
}

// AdjustmentLevel is the sugar or ice percentage chosen for a cart line.
type AdjustmentLevel string

const (
	AdjustmentLevelNone    AdjustmentLevel = "0"
	AdjustmentLevelQuarter AdjustmentLevel = "25"
	AdjustmentLevelHalf    AdjustmentLevel = "50"
	AdjustmentLevelMost    AdjustmentLevel = "75"
	AdjustmentLevelFull    AdjustmentLevel = "100"
)

var validAdjustmentLevels = []AdjustmentLevel{
	AdjustmentLevelNone,
	AdjustmentLevelQuarter,
	AdjustmentLevelHalf,
	AdjustmentLevelMost,
	AdjustmentLevelFull,
}

// String implements fmt.Stringer.
func (a AdjustmentLevel) String() string {
	return string(a)
}

// IsValid reports whether the value is a known AdjustmentLevel.
func (a AdjustmentLevel) IsValid() bool {
	for _, candidate := range validAdjustmentLevels {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAdjustmentLevel converts raw input into an AdjustmentLevel.
func ParseAdjustmentLevel(value string) (AdjustmentLevel, error) {
	for _, candidate := range validAdjustmentLevels {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid adjustment level %q", value)
}
