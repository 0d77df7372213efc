package orders

import "github.com/huynhtrandev/brewpoint-backend/pkg/enums"

// Lifecycle paths are fixed per mode. Status only ever moves forward along
// its path; COMPLETED is terminal and absorbing. There is no cancellation
// state in this lifecycle.
var (
	deliveryPath = []enums.OrderStatus{
		enums.OrderStatusPending,
		enums.OrderStatusConfirmed,
		enums.OrderStatusPreparing,
		enums.OrderStatusDelivering,
		enums.OrderStatusCompleted,
	}
	pickupPath = []enums.OrderStatus{
		enums.OrderStatusPending,
		enums.OrderStatusConfirmed,
		enums.OrderStatusPreparing,
		enums.OrderStatusReady,
		enums.OrderStatusCompleted,
	}
)

// Path returns the status sequence for the given mode.
func Path(mode enums.OrderMode) []enums.OrderStatus {
	if mode == enums.OrderModePickup {
		return pickupPath
	}
	return deliveryPath
}

// NextStatus returns the status following current on the mode's path.
// advanced=false means the order is already terminal (or the status is not
// on the path) and must stay unchanged.
func NextStatus(mode enums.OrderMode, current enums.OrderStatus) (enums.OrderStatus, bool) {
	path := Path(mode)
	for i, status := range path {
		if status != current {
			continue
		}
		if i == len(path)-1 {
			return current, false
		}
		return path[i+1], true
	}
	return current, false
}
