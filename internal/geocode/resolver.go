package geocode

import (
	"strings"

	"github.com/huynhtrandev/brewpoint-backend/pkg/types"
)

// localityPattern maps locality keywords to a known center coordinate.
// Patterns are tested in order and the first keyword hit wins, so more
// specific localities must be listed before the districts containing them.
type localityPattern struct {
	keywords []string
	coord    types.Coordinate
}

var localityPatterns = []localityPattern{
	{keywords: []string{"thao dien", "thảo điền"}, coord: types.Coordinate{Lat: 10.8031, Lng: 106.7339}},
	{keywords: []string{"landmark 81", "vinhomes central park"}, coord: types.Coordinate{Lat: 10.7951, Lng: 106.7218}},
	{keywords: []string{"phu my hung", "phú mỹ hưng"}, coord: types.Coordinate{Lat: 10.7296, Lng: 106.7217}},
	{keywords: []string{"ben thanh", "bến thành", "district 1", "quan 1", "quận 1"}, coord: types.Coordinate{Lat: 10.7721, Lng: 106.6983}},
	{keywords: []string{"district 3", "quan 3", "quận 3"}, coord: types.Coordinate{Lat: 10.7808, Lng: 106.6844}},
	{keywords: []string{"district 7", "quan 7", "quận 7"}, coord: types.Coordinate{Lat: 10.7340, Lng: 106.7218}},
	{keywords: []string{"binh thanh", "bình thạnh"}, coord: types.Coordinate{Lat: 10.8106, Lng: 106.7091}},
	{keywords: []string{"phu nhuan", "phú nhuận"}, coord: types.Coordinate{Lat: 10.7992, Lng: 106.6805}},
	{keywords: []string{"tan binh", "tân bình"}, coord: types.Coordinate{Lat: 10.8014, Lng: 106.6526}},
	{keywords: []string{"go vap", "gò vấp"}, coord: types.Coordinate{Lat: 10.8387, Lng: 106.6654}},
	{keywords: []string{"thu duc", "thủ đức"}, coord: types.Coordinate{Lat: 10.8494, Lng: 106.7537}},
}

// Resolver maps free-text addresses to approximate locality-center
// coordinates. It is a keyword heuristic, not a geocoder: a miss means
// "insufficient information", never "address does not exist".
type Resolver struct {
	patterns []localityPattern
}

// NewResolver builds a resolver over the default locality table.
func NewResolver() *Resolver {
	return &Resolver{patterns: localityPatterns}
}

// Resolve lower-cases the text and returns the center coordinate of the
// first matching locality, or ok=false when nothing matches.
func (r *Resolver) Resolve(text string) (types.Coordinate, bool) {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return types.Coordinate{}, false
	}
	for _, pattern := range r.patterns {
		for _, keyword := range pattern.keywords {
			if strings.Contains(normalized, keyword) {
				return pattern.coord, true
			}
		}
	}
	return types.Coordinate{}, false
}
