package types

import "fmt"

// Coordinate is a WGS84 latitude/longitude pair, treated as a value type.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Validate reports whether the pair is inside valid WGS84 ranges.
func (c Coordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("coordinate: latitude %f out of range", c.Lat)
	}
	if c.Lng < -180 || c.Lng > 180 {
		return fmt.Errorf("coordinate: longitude %f out of range", c.Lng)
	}
	return nil
}
