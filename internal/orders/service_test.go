package orders

import (
	"context"
	"testing"
	"time"

	"github.com/huynhtrandev/brewpoint-backend/internal/cart"
	"github.com/huynhtrandev/brewpoint-backend/pkg/enums"
	pkgerrors "github.com/huynhtrandev/brewpoint-backend/pkg/errors"
	"github.com/huynhtrandev/brewpoint-backend/pkg/snapshot"
)

func testService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(snapshot.NewMemory(), nil, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func placeInput(mode enums.OrderMode) PlaceInput {
	return PlaceInput{
		CustomerID:         "cus-1",
		Mode:               mode,
		BranchID:           "br-ben-thanh",
		DeliveryAddress:    "45 Nguyen Hue, District 1",
		Items:              []cart.Item{{Key: "k", ProductID: "pr-ca-phe-sua-da", UnitPrice: 29000, Quantity: 2}},
		Subtotal:           58000,
		DeliveryFee:        20000,
		EstimatedTotalMins: 36,
	}
}

func TestPlaceSeedsPendingOrder(t *testing.T) {
	t.Parallel()

	svc := testService(t)
	order, err := svc.Place(context.Background(), placeInput(enums.OrderModeDelivery))
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if order.Status != enums.OrderStatusPending {
		t.Fatalf("expected pending, got %s", order.Status)
	}
	if order.Total != 78000 {
		t.Fatalf("expected total 78000, got %d", order.Total)
	}
	if order.ID == "" {
		t.Fatal("expected generated id")
	}
}

func TestPlacePrependsToHistory(t *testing.T) {
	t.Parallel()

	svc := testService(t)
	ctx := context.Background()
	first, err := svc.Place(ctx, placeInput(enums.OrderModeDelivery))
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	second, err := svc.Place(ctx, placeInput(enums.OrderModePickup))
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	history, err := svc.List(ctx, "cus-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(history))
	}
	if history[0].ID != second.ID || history[1].ID != first.ID {
		t.Fatal("expected newest order first")
	}
}

func TestAdvanceDeliveryPath(t *testing.T) {
	t.Parallel()

	svc := testService(t)
	ctx := context.Background()
	order, err := svc.Place(ctx, placeInput(enums.OrderModeDelivery))
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	want := []enums.OrderStatus{
		enums.OrderStatusConfirmed,
		enums.OrderStatusPreparing,
		enums.OrderStatusDelivering,
		enums.OrderStatusCompleted,
	}
	for _, status := range want {
		advanced, err := svc.Advance(ctx, "cus-1", order.ID)
		if err != nil {
			t.Fatalf("advance: %v", err)
		}
		if advanced.Status != status {
			t.Fatalf("expected %s, got %s", status, advanced.Status)
		}
	}

	// Fifth advance is a no-op on the completed order.
	final, err := svc.Advance(ctx, "cus-1", order.ID)
	if err != nil {
		t.Fatalf("advance past terminal: %v", err)
	}
	if final.Status != enums.OrderStatusCompleted {
		t.Fatalf("expected completed to absorb, got %s", final.Status)
	}
}

func TestAdvancePickupPathReachesReady(t *testing.T) {
	t.Parallel()

	svc := testService(t)
	ctx := context.Background()
	order, err := svc.Place(ctx, placeInput(enums.OrderModePickup))
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	var last *PlacedOrder
	for i := 0; i < 3; i++ {
		last, err = svc.Advance(ctx, "cus-1", order.ID)
		if err != nil {
			t.Fatalf("advance: %v", err)
		}
	}
	if last.Status != enums.OrderStatusReady {
		t.Fatalf("expected ready on third advance, got %s", last.Status)
	}
}

func TestAdvanceStampsStatusUpdatedAt(t *testing.T) {
	t.Parallel()

	svc := testService(t)
	base := time.Date(2026, time.March, 9, 9, 0, 0, 0, time.UTC)
	current := base
	svc.WithClock(func() time.Time { return current })

	ctx := context.Background()
	order, err := svc.Place(ctx, placeInput(enums.OrderModeDelivery))
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if !order.StatusUpdatedAt.Equal(base) {
		t.Fatalf("expected initial stamp %s, got %s", base, order.StatusUpdatedAt)
	}

	current = base.Add(5 * time.Minute)
	advanced, err := svc.Advance(ctx, "cus-1", order.ID)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if !advanced.StatusUpdatedAt.Equal(current) {
		t.Fatalf("expected stamp %s, got %s", current, advanced.StatusUpdatedAt)
	}
}

func TestAdvanceUnknownOrder(t *testing.T) {
	t.Parallel()

	svc := testService(t)
	_, err := svc.Advance(context.Background(), "cus-1", "missing")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPlaceValidation(t *testing.T) {
	t.Parallel()

	svc := testService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*PlaceInput)
	}{
		{name: "missing customer", mutate: func(in *PlaceInput) { in.CustomerID = "" }},
		{name: "missing branch", mutate: func(in *PlaceInput) { in.BranchID = "" }},
		{name: "invalid mode", mutate: func(in *PlaceInput) { in.Mode = "teleport" }},
		{name: "empty items", mutate: func(in *PlaceInput) { in.Items = nil }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := placeInput(enums.OrderModeDelivery)
			tc.mutate(&input)
			_, err := svc.Place(ctx, input)
			if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}
