package pricing

import (
	"testing"

	"github.com/huynhtrandev/brewpoint-backend/internal/branches"
	"github.com/huynhtrandev/brewpoint-backend/pkg/enums"
)

func feeBranch() branches.Branch {
	return branches.Branch{
		BaseDeliveryFee:  15000,
		ExtraFeePerKm:    5000,
		PrepTimeMins:     10,
		DeliveryTimeMins: 20,
	}
}

func TestFeeWithinFirstKilometer(t *testing.T) {
	t.Parallel()

	branch := feeBranch()
	for _, d := range []float64{0, 0.2, 0.999, 1.0} {
		if got := Fee(branch, d); got != branch.BaseDeliveryFee {
			t.Fatalf("expected base fee at %f km, got %d", d, got)
		}
	}
}

func TestFeeRoundsUpToThousand(t *testing.T) {
	t.Parallel()

	branch := feeBranch()

	tests := []struct {
		distance float64
		want     int
	}{
		// 15000 + 1.0*5000 = 20000, already a round thousand
		{distance: 2.0, want: 20000},
		// 15000 + 2.5*5000 = 27500 -> 28000
		{distance: 3.5, want: 28000},
		// 15000 + 0.1*5000 = 15500 -> 16000
		{distance: 1.1, want: 16000},
		// 15000 + 2.0*5000 = 25000
		{distance: 3.0, want: 25000},
	}

	for _, tc := range tests {
		got := Fee(branch, tc.distance)
		if got != tc.want {
			t.Fatalf("fee at %f km: expected %d, got %d", tc.distance, tc.want, got)
		}
		if got%1000 != 0 {
			t.Fatalf("fee at %f km is not a multiple of 1000: %d", tc.distance, got)
		}
	}
}

func TestETADelivery(t *testing.T) {
	t.Parallel()

	branch := feeBranch()
	est := ETA(branch, enums.OrderModeDelivery, 3.0)
	if est.PrepMins != 10 {
		t.Fatalf("expected prep 10, got %d", est.PrepMins)
	}
	if est.DeliveryMins != 26 {
		t.Fatalf("expected delivery 26 (20 base + 6 traffic), got %d", est.DeliveryMins)
	}
	if est.TotalMins != 36 {
		t.Fatalf("expected total 36, got %d", est.TotalMins)
	}
}

func TestETADeliveryRoundsTrafficPenalty(t *testing.T) {
	t.Parallel()

	branch := feeBranch()
	// 2.3 km -> 4.6 extra minutes -> rounds to 5
	if est := ETA(branch, enums.OrderModeDelivery, 2.3); est.DeliveryMins != 25 {
		t.Fatalf("expected delivery 25, got %d", est.DeliveryMins)
	}
}

func TestETAPickupHasNoTravelLeg(t *testing.T) {
	t.Parallel()

	branch := feeBranch()
	est := ETA(branch, enums.OrderModePickup, 3.0)
	if est.DeliveryMins != 0 {
		t.Fatalf("expected zero delivery minutes for pickup, got %d", est.DeliveryMins)
	}
	if est.TotalMins != branch.PrepTimeMins {
		t.Fatalf("expected total %d, got %d", branch.PrepTimeMins, est.TotalMins)
	}
}
