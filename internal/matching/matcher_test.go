package matching

import (
	"math"
	"strings"
	"testing"

	"github.com/huynhtrandev/brewpoint-backend/internal/branches"
	"github.com/huynhtrandev/brewpoint-backend/pkg/types"
)

// latForKm places a point n kilometers due north of the equator origin.
func latForKm(km float64) float64 {
	return km / 111.195
}

func testBranch(id string, lat float64, radiusKm float64, active bool) branches.Branch {
	return branches.Branch{
		ID:               id,
		Name:             id,
		Coord:            types.Coordinate{Lat: lat, Lng: 0},
		DeliveryRadiusKm: radiusKm,
		BaseDeliveryFee:  15000,
		ExtraFeePerKm:    5000,
		PrepTimeMins:     10,
		DeliveryTimeMins: 20,
		OpeningHours:     branches.OpeningHours{Open: "07:00", Close: "22:00", Days: "Mon-Sun"},
		IsActive:         active,
	}
}

func mustDirectory(t *testing.T, entries ...branches.Branch) *branches.Directory {
	t.Helper()
	dir, err := branches.NewDirectory(entries)
	if err != nil {
		t.Fatalf("build directory: %v", err)
	}
	return dir
}

func TestMatchPrefersCloserInRadiusBranch(t *testing.T) {
	t.Parallel()

	// Branch X is 4.0 km out with radius 4.5; branch Y is 3.0 km out with
	// radius 5.0. Y is both closer and in radius, so Y must win.
	dir := mustDirectory(t,
		testBranch("branch-x", latForKm(4.0), 4.5, true),
		testBranch("branch-y", latForKm(3.0), 5.0, true),
	)

	res := Match(types.Coordinate{Lat: 0, Lng: 0}, dir)
	if !res.IsValid {
		t.Fatalf("expected valid result, got %+v", res)
	}
	if res.NearestBranch.ID != "branch-y" {
		t.Fatalf("expected branch-y, got %s", res.NearestBranch.ID)
	}
	if math.Abs(*res.DistanceKm-3.0) > 0.01 {
		t.Fatalf("expected distance about 3.0, got %f", *res.DistanceKm)
	}
	// 15000 + 2.0*5000 = 25000
	if res.EstimatedFee == nil || *res.EstimatedFee != 25000 {
		t.Fatalf("expected fee 25000, got %v", res.EstimatedFee)
	}
}

func TestMatchOutOfRadius(t *testing.T) {
	t.Parallel()

	dir := mustDirectory(t, testBranch("branch-only", latForKm(6.0), 5.0, true))

	res := Match(types.Coordinate{Lat: 0, Lng: 0}, dir)
	if res.IsValid {
		t.Fatalf("expected invalid result, got %+v", res)
	}
	if res.NearestBranch == nil || res.NearestBranch.ID != "branch-only" {
		t.Fatalf("expected nearest branch set, got %+v", res.NearestBranch)
	}
	if math.Abs(*res.DistanceKm-6.0) > 0.01 {
		t.Fatalf("expected distance about 6.0, got %f", *res.DistanceKm)
	}
	if res.EstimatedFee != nil {
		t.Fatalf("expected no fee estimate, got %d", *res.EstimatedFee)
	}
	if !strings.Contains(res.Message, "outside delivery radius") {
		t.Fatalf("unexpected message %q", res.Message)
	}
}

func TestMatchSkipsInactiveBranches(t *testing.T) {
	t.Parallel()

	dir := mustDirectory(t,
		testBranch("branch-near-inactive", latForKm(1.0), 5.0, false),
		testBranch("branch-far-active", latForKm(4.0), 5.0, true),
	)

	res := Match(types.Coordinate{Lat: 0, Lng: 0}, dir)
	if !res.IsValid || res.NearestBranch.ID != "branch-far-active" {
		t.Fatalf("expected active branch to win, got %+v", res)
	}
}

func TestMatchNoActiveBranches(t *testing.T) {
	t.Parallel()

	dir := mustDirectory(t, testBranch("branch-dark", latForKm(1.0), 5.0, false))

	res := Match(types.Coordinate{Lat: 0, Lng: 0}, dir)
	if res.IsValid {
		t.Fatal("expected invalid result")
	}
	if res.NearestBranch != nil {
		t.Fatalf("expected no nearest branch, got %+v", res.NearestBranch)
	}
	if res.Message != "no active branches" {
		t.Fatalf("unexpected message %q", res.Message)
	}
}

func TestMatchTieBreaksByDeclarationOrder(t *testing.T) {
	t.Parallel()

	dir := mustDirectory(t,
		testBranch("branch-first", latForKm(2.0), 5.0, true),
		testBranch("branch-second", latForKm(2.0), 5.0, true),
	)

	res := Match(types.Coordinate{Lat: 0, Lng: 0}, dir)
	if !res.IsValid || res.NearestBranch.ID != "branch-first" {
		t.Fatalf("expected declaration-order tie-break, got %+v", res)
	}
}

func TestMatchValidIffSomeActiveBranchInRadius(t *testing.T) {
	t.Parallel()

	// The globally closest branch is out of radius while a farther branch
	// is in radius: the match is still valid, won by the farther branch.
	dir := mustDirectory(t,
		testBranch("branch-close-small-radius", latForKm(2.0), 1.0, true),
		testBranch("branch-far-big-radius", latForKm(4.0), 5.0, true),
	)

	res := Match(types.Coordinate{Lat: 0, Lng: 0}, dir)
	if !res.IsValid || res.NearestBranch.ID != "branch-far-big-radius" {
		t.Fatalf("expected in-radius branch to qualify, got %+v", res)
	}
}
