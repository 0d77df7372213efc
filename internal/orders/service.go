package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/huynhtrandev/brewpoint-backend/internal/cart"
	"github.com/huynhtrandev/brewpoint-backend/pkg/enums"
	pkgerrors "github.com/huynhtrandev/brewpoint-backend/pkg/errors"
	"github.com/huynhtrandev/brewpoint-backend/pkg/logger"
	"github.com/huynhtrandev/brewpoint-backend/pkg/metrics"
	redisclient "github.com/huynhtrandev/brewpoint-backend/pkg/redis"
	"github.com/huynhtrandev/brewpoint-backend/pkg/snapshot"
)

// PlacedOrder is an order record seeded at checkout. Line items and amounts
// are snapshots taken at placement; later catalog or fee changes never touch
// an existing order.
type PlacedOrder struct {
	ID                 string            `json:"id"`
	CustomerID         string            `json:"customer_id"`
	Mode               enums.OrderMode   `json:"mode"`
	Status             enums.OrderStatus `json:"status"`
	StatusUpdatedAt    time.Time         `json:"status_updated_at"`
	BranchID           string            `json:"branch_id"`
	DeliveryAddress    string            `json:"delivery_address,omitempty"`
	Items              []cart.Item       `json:"items"`
	Subtotal           int               `json:"subtotal"`
	DeliveryFee        int               `json:"delivery_fee"`
	Total              int               `json:"total"`
	EstimatedTotalMins int               `json:"estimated_total_mins"`
	CreatedAt          time.Time         `json:"created_at"`
}

// PlaceInput carries the resolved fulfillment data an order is seeded with.
type PlaceInput struct {
	CustomerID         string
	Mode               enums.OrderMode
	BranchID           string
	DeliveryAddress    string
	Items              []cart.Item
	Subtotal           int
	DeliveryFee        int
	EstimatedTotalMins int
}

// Service persists per-customer order history, newest first, and advances
// orders along their lifecycle path.
type Service struct {
	store   snapshot.Store
	metrics *metrics.FulfillmentMetrics
	logg    *logger.Logger
	now     func() time.Time
}

// NewService builds an order service over the snapshot store.
func NewService(store snapshot.Store, m *metrics.FulfillmentMetrics, logg *logger.Logger) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("snapshot store required")
	}
	return &Service{store: store, metrics: m, logg: logg, now: time.Now}, nil
}

// WithClock overrides the wall clock, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// List returns the customer's order history, newest first.
func (s *Service) List(ctx context.Context, customerID string) ([]PlacedOrder, error) {
	blob, ok, err := s.store.Get(ctx, redisclient.OrdersKey(customerID))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order history")
	}
	if !ok {
		return nil, nil
	}
	var history []PlacedOrder
	if err := json.Unmarshal(blob, &history); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode order history")
	}
	return history, nil
}

// Get returns one order by id.
func (s *Service) Get(ctx context.Context, customerID, orderID string) (*PlacedOrder, error) {
	history, err := s.List(ctx, customerID)
	if err != nil {
		return nil, err
	}
	for i := range history {
		if history[i].ID == orderID {
			return &history[i], nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}

// Place seeds a new PENDING order and prepends it to the history.
func (s *Service) Place(ctx context.Context, input PlaceInput) (*PlacedOrder, error) {
	if input.CustomerID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer id required")
	}
	if !input.Mode.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order mode")
	}
	if input.BranchID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "branch id required")
	}
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order has no items")
	}

	history, err := s.List(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	order := PlacedOrder{
		ID:                 uuid.NewString(),
		CustomerID:         input.CustomerID,
		Mode:               input.Mode,
		Status:             enums.OrderStatusPending,
		StatusUpdatedAt:    now,
		BranchID:           input.BranchID,
		DeliveryAddress:    input.DeliveryAddress,
		Items:              input.Items,
		Subtotal:           input.Subtotal,
		DeliveryFee:        input.DeliveryFee,
		Total:              input.Subtotal + input.DeliveryFee,
		EstimatedTotalMins: input.EstimatedTotalMins,
		CreatedAt:          now,
	}

	history = append([]PlacedOrder{order}, history...)
	if err := s.persist(ctx, input.CustomerID, history); err != nil {
		return nil, err
	}

	s.metrics.IncOrderPlaced(order.Mode.String())
	if s.logg != nil {
		ctx = s.logg.WithCustomerID(ctx, input.CustomerID)
		ctx = s.logg.WithBranchID(ctx, input.BranchID)
		s.logg.Info(ctx, "order.placed")
	}
	return &order, nil
}

// Advance moves the order one step along its mode's path. Advancing a
// COMPLETED order is a no-op, not an error.
func (s *Service) Advance(ctx context.Context, customerID, orderID string) (*PlacedOrder, error) {
	history, err := s.List(ctx, customerID)
	if err != nil {
		return nil, err
	}

	for i := range history {
		if history[i].ID != orderID {
			continue
		}
		next, advanced := NextStatus(history[i].Mode, history[i].Status)
		if !advanced {
			return &history[i], nil
		}
		history[i].Status = next
		history[i].StatusUpdatedAt = s.now()
		if err := s.persist(ctx, customerID, history); err != nil {
			return nil, err
		}
		return &history[i], nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}

func (s *Service) persist(ctx context.Context, customerID string, history []PlacedOrder) error {
	blob, err := json.Marshal(history)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode order history")
	}
	if err := s.store.Set(ctx, redisclient.OrdersKey(customerID), blob); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist order history")
	}
	return nil
}
