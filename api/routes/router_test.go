package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huynhtrandev/brewpoint-backend/internal/branches"
	cartsvc "github.com/huynhtrandev/brewpoint-backend/internal/cart"
	"github.com/huynhtrandev/brewpoint-backend/internal/catalog"
	"github.com/huynhtrandev/brewpoint-backend/internal/fulfillment"
	ordersvc "github.com/huynhtrandev/brewpoint-backend/internal/orders"
	"github.com/huynhtrandev/brewpoint-backend/pkg/config"
	"github.com/huynhtrandev/brewpoint-backend/pkg/enums"
	"github.com/huynhtrandev/brewpoint-backend/pkg/snapshot"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}

	store := snapshot.NewMemory()
	cat := catalog.Seed()

	directory, err := branches.NewDirectory(branches.Seed())
	require.NoError(t, err)

	cartService, err := cartsvc.NewService(store, cat, nil)
	require.NoError(t, err)

	ordersService, err := ordersvc.NewService(store, nil, nil)
	require.NoError(t, err)

	manager, err := fulfillment.NewManager(fulfillment.ManagerParams{
		Directory:   directory,
		Resolver:    fulfillment.NewKeywordResolver(),
		Store:       store,
		DefaultMode: enums.OrderModeDelivery,
	})
	require.NoError(t, err)
	manager.WithClock(func() time.Time {
		return time.Date(2026, time.March, 9, 12, 0, 0, 0, time.UTC)
	})

	return NewRouter(cfg, nil, stubPinger{}, directory, cat, manager, cartService, ordersService)
}

func doJSON(t *testing.T, router http.Handler, method, path, customerID string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if customerID != "" {
		req.Header.Set("X-Customer-Id", customerID)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope), "body: %s", rec.Body.String())
	}
	return rec, envelope
}

func dataOf(t *testing.T, envelope map[string]any) map[string]any {
	t.Helper()
	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok, "expected data envelope, got %v", envelope)
	return data
}

func TestPublicEndpoints(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodGet, "/health/ready", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ready", dataOf(t, envelope)["status"])

	rec, envelope = doJSON(t, router, http.MethodGet, "/api/v1/menu", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, dataOf(t, envelope)["products"], 5)
	assert.Len(t, dataOf(t, envelope)["toppings"], 4)

	rec, envelope = doJSON(t, router, http.MethodGet, "/api/v1/branches", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, dataOf(t, envelope)["branches"], 4)
}

func TestCustomerHeaderRequired(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodGet, "/api/v1/cart/", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	errObj, ok := envelope["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "UNAUTHORIZED", errObj["code"])
}

func TestCheckoutGateBlocksUnreadySession(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodPost, "/api/v1/orders/", "cus-gate", nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	errObj, ok := envelope["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "NOT_READY_TO_ORDER", errObj["code"])

	details, ok := errObj["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "delivery", details["order_mode"])
	assert.Nil(t, details["selected_branch"])
	assert.Nil(t, details["validation_result"])
}

func TestDeliveryCheckoutFlow(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	customer := "cus-flow"

	// Entering and validating an address binds the nearest branch. The text
	// resolves onto the Thao Dien locality center, which is the Thao Dien
	// branch's own coordinate, so the trip distance is zero.
	rec, _ := doJSON(t, router, http.MethodPut, "/api/v1/fulfillment/address", customer, map[string]any{
		"raw_address": "8 Xuan Thuy, Thao Dien",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, envelope := doJSON(t, router, http.MethodPost, "/api/v1/fulfillment/address/validate", customer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	state := dataOf(t, envelope)
	assert.Equal(t, true, state["is_ready_to_order"])
	branch, ok := state["selected_branch"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "br-thao-dien", branch["id"])
	assert.Equal(t, float64(15000), state["current_delivery_fee"])

	rec, envelope = doJSON(t, router, http.MethodPost, "/api/v1/cart/items", customer, map[string]any{
		"product_id":  "pr-ca-phe-sua-da",
		"size":        "M",
		"sugar_level": "50",
		"ice_level":   "100",
		"topping_ids": []string{"tp-pearl"},
		"quantity":    2,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	// (29000 + 6000 + 7000) * 2
	assert.Equal(t, float64(84000), dataOf(t, envelope)["subtotal"])

	rec, envelope = doJSON(t, router, http.MethodPost, "/api/v1/orders/", customer, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	order := dataOf(t, envelope)
	assert.Equal(t, "pending", order["status"])
	assert.Equal(t, "delivery", order["mode"])
	assert.Equal(t, float64(84000), order["subtotal"])
	assert.Equal(t, float64(15000), order["delivery_fee"])
	assert.Equal(t, float64(99000), order["total"])
	orderID, ok := order["id"].(string)
	require.True(t, ok)

	// Placing the order consumes the cart.
	rec, envelope = doJSON(t, router, http.MethodGet, "/api/v1/cart/", customer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, dataOf(t, envelope)["items"])

	rec, envelope = doJSON(t, router, http.MethodPost, "/api/v1/orders/"+orderID+"/advance", customer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "confirmed", dataOf(t, envelope)["status"])
}

func TestBranchSwitchClearsCart(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	customer := "cus-switch"

	rec, _ := doJSON(t, router, http.MethodPut, "/api/v1/fulfillment/branch", customer, map[string]any{
		"branch_id": "br-ben-thanh",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, router, http.MethodPost, "/api/v1/cart/items", customer, map[string]any{
		"product_id":  "pr-cold-brew",
		"size":        "S",
		"sugar_level": "0",
		"ice_level":   "50",
		"quantity":    1,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, router, http.MethodPut, "/api/v1/fulfillment/branch", customer, map[string]any{
		"branch_id": "br-phu-nhuan",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, envelope := doJSON(t, router, http.MethodGet, "/api/v1/cart/", customer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, dataOf(t, envelope)["items"])
}
