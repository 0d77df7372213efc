package matching

import (
	"fmt"
	"sort"

	"github.com/huynhtrandev/brewpoint-backend/internal/branches"
	"github.com/huynhtrandev/brewpoint-backend/internal/geo"
	"github.com/huynhtrandev/brewpoint-backend/internal/pricing"
	"github.com/huynhtrandev/brewpoint-backend/pkg/types"
)

// Result is produced fresh by every Match call and never mutated in place.
// A false IsValid is user-actionable information, not a system error.
type Result struct {
	IsValid       bool             `json:"is_valid"`
	NearestBranch *branches.Branch `json:"nearest_branch,omitempty"`
	DistanceKm    *float64         `json:"distance_km,omitempty"`
	EstimatedFee  *int             `json:"estimated_fee,omitempty"`
	Message       string           `json:"message,omitempty"`
}

type candidate struct {
	branch   branches.Branch
	distance float64
}

// Match ranks active branches by distance from the coordinate and qualifies
// the nearest in-radius one. Distance ties resolve to the branch declared
// first in the directory.
func Match(coord types.Coordinate, directory *branches.Directory) Result {
	active := directory.Active()
	if len(active) == 0 {
		return Result{IsValid: false, Message: "no active branches"}
	}

	ranked := make([]candidate, 0, len(active))
	for _, b := range active {
		ranked = append(ranked, candidate{branch: b, distance: geo.DistanceKm(coord, b.Coord)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].distance < ranked[j].distance
	})

	closest := ranked[0]
	var inRadius []candidate
	for _, c := range ranked {
		if c.distance <= c.branch.DeliveryRadiusKm {
			inRadius = append(inRadius, c)
		}
	}

	if len(inRadius) == 0 {
		branch := closest.branch
		distance := closest.distance
		return Result{
			IsValid:       false,
			NearestBranch: &branch,
			DistanceKm:    &distance,
			Message: fmt.Sprintf(
				"outside delivery radius, nearest is %.1f km away (radius %.1f km)",
				distance, branch.DeliveryRadiusKm,
			),
		}
	}

	best := inRadius[0]
	branch := best.branch
	distance := best.distance
	fee := pricing.Fee(branch, distance)
	return Result{
		IsValid:       true,
		NearestBranch: &branch,
		DistanceKm:    &distance,
		EstimatedFee:  &fee,
	}
}
