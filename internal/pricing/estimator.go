package pricing

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/huynhtrandev/brewpoint-backend/internal/branches"
	"github.com/huynhtrandev/brewpoint-backend/pkg/enums"
)

// feeIncrement is the rounding step for delivery fees. Displayed prices must
// always be round thousand-VND amounts, so the rounding here is a contract,
// not an approximation.
const feeIncrement = 1000

// trafficPenaltyPerKm adds coarse travel minutes beyond the branch's base
// delivery estimate.
const trafficPenaltyPerKm = 2

// Estimate is the timing breakdown for an order.
type Estimate struct {
	PrepMins     int `json:"prep_mins"`
	DeliveryMins int `json:"delivery_mins"`
	TotalMins    int `json:"total_mins"`
}

// Fee computes the delivery fee for serving a point distanceKm away from the
// branch. The first kilometer is covered by the base fee; beyond that the
// per-km surcharge applies and the result rounds up to the nearest thousand.
func Fee(branch branches.Branch, distanceKm float64) int {
	if distanceKm <= 1 {
		return branch.BaseDeliveryFee
	}

	raw := decimal.NewFromInt(int64(branch.BaseDeliveryFee)).
		Add(decimal.NewFromFloat(distanceKm - 1).Mul(decimal.NewFromInt(int64(branch.ExtraFeePerKm))))

	increments := raw.Div(decimal.NewFromInt(feeIncrement)).Ceil()
	return int(increments.Mul(decimal.NewFromInt(feeIncrement)).IntPart())
}

// ETA estimates total minutes until completion. Pickup orders have no travel
// leg; delivery orders add the branch's base travel time plus a traffic
// penalty of two minutes per kilometer.
func ETA(branch branches.Branch, mode enums.OrderMode, distanceKm float64) Estimate {
	est := Estimate{PrepMins: branch.PrepTimeMins}
	if mode == enums.OrderModeDelivery {
		est.DeliveryMins = branch.DeliveryTimeMins + int(math.Round(distanceKm*trafficPenaltyPerKm))
	}
	est.TotalMins = est.PrepMins + est.DeliveryMins
	return est
}
