package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/huynhtrandev/brewpoint-backend/api/responses"
	"github.com/huynhtrandev/brewpoint-backend/internal/branches"
	"github.com/huynhtrandev/brewpoint-backend/internal/geo"
	pkgerrors "github.com/huynhtrandev/brewpoint-backend/pkg/errors"
	"github.com/huynhtrandev/brewpoint-backend/pkg/logger"
	"github.com/huynhtrandev/brewpoint-backend/pkg/types"
)

type branchResponse struct {
	branches.Branch
	IsOpen     bool     `json:"is_open"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// ListBranches returns the active branches. When the caller supplies lat/lng
// query params, each branch carries its distance from that point.
func ListBranches(dir *branches.Directory, logg *logger.Logger, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var origin *types.Coordinate
		latRaw, lngRaw := r.URL.Query().Get("lat"), r.URL.Query().Get("lng")
		if latRaw != "" || lngRaw != "" {
			lat, latErr := strconv.ParseFloat(latRaw, 64)
			lng, lngErr := strconv.ParseFloat(lngRaw, 64)
			if latErr != nil || lngErr != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "lat and lng must both be valid numbers"))
				return
			}
			coord := types.Coordinate{Lat: lat, Lng: lng}
			if err := coord.Validate(); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid coordinates"))
				return
			}
			origin = &coord
		}

		at := now()
		active := dir.Active()
		items := make([]branchResponse, 0, len(active))
		for _, b := range active {
			item := branchResponse{Branch: b, IsOpen: branches.IsOpen(b, at)}
			if origin != nil {
				d := geo.DistanceKm(*origin, b.Coord)
				item.DistanceKm = &d
			}
			items = append(items, item)
		}

		responses.WriteSuccess(w, map[string]any{"branches": items})
	}
}

// GetBranch returns a single branch by id, inactive ones included so the
// storefront can render "temporarily closed" detail pages.
func GetBranch(dir *branches.Directory, logg *logger.Logger, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		branch := dir.FindByID(chi.URLParam(r, "branchId"))
		if branch == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "branch not found"))
			return
		}
		responses.WriteSuccess(w, branchResponse{Branch: *branch, IsOpen: branches.IsOpen(*branch, now())})
	}
}
