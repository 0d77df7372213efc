package controllers

import (
	"context"
	"net/http"

	"github.com/huynhtrandev/brewpoint-backend/api/middleware"
	"github.com/huynhtrandev/brewpoint-backend/api/responses"
	"github.com/huynhtrandev/brewpoint-backend/api/validators"
	cartsvc "github.com/huynhtrandev/brewpoint-backend/internal/cart"
	"github.com/huynhtrandev/brewpoint-backend/internal/fulfillment"
	"github.com/huynhtrandev/brewpoint-backend/pkg/enums"
	pkgerrors "github.com/huynhtrandev/brewpoint-backend/pkg/errors"
	"github.com/huynhtrandev/brewpoint-backend/pkg/logger"
)

func customerSession(r *http.Request, manager *fulfillment.Manager) (*fulfillment.Session, error) {
	customerID := middleware.CustomerIDFromContext(r.Context())
	return manager.Session(r.Context(), customerID)
}

// clearCartFor returns the branch-switch hook: items priced under the old
// branch's menu are dropped before the new branch commits.
func clearCartFor(cartService *cartsvc.Service, customerID string) func(context.Context) error {
	return func(ctx context.Context) error {
		return cartService.Clear(ctx, customerID)
	}
}

// FulfillmentState returns the customer's current fulfillment state.
func FulfillmentState(manager *fulfillment.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := customerSession(r, manager)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, session.State())
	}
}

type setOrderModeRequest struct {
	OrderMode string `json:"order_mode" validate:"required"`
}

// SetOrderMode toggles between delivery and pickup.
func SetOrderMode(manager *fulfillment.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload setOrderModeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		mode, err := enums.ParseOrderMode(payload.OrderMode)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order mode"))
			return
		}

		session, err := customerSession(r, manager)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		state, err := session.SetOrderMode(r.Context(), mode)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, state)
	}
}

type setBranchRequest struct {
	BranchID string `json:"branch_id" validate:"required"`
}

// SetBranch binds the session to a branch, clearing the cart on a switch.
func SetBranch(manager *fulfillment.Manager, cartService *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload setBranchRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := customerSession(r, manager)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		customerID := middleware.CustomerIDFromContext(r.Context())
		state, err := session.SetSelectedBranch(r.Context(), payload.BranchID, clearCartFor(cartService, customerID))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, state)
	}
}

type setAddressRequest struct {
	RawAddress string `json:"raw_address" validate:"max=500"`
}

// SetAddress replaces the delivery address text. Validation state is dropped;
// the storefront calls the validate endpoint explicitly afterwards.
func SetAddress(manager *fulfillment.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload setAddressRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := customerSession(r, manager)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		state, err := session.SetDeliveryAddress(r.Context(), payload.RawAddress)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, state)
	}
}

// ValidateAddress resolves the current address and matches a branch. An
// address-driven branch switch clears the cart the same way SetBranch does.
func ValidateAddress(manager *fulfillment.Manager, cartService *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := customerSession(r, manager)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		customerID := middleware.CustomerIDFromContext(r.Context())
		state, err := session.ValidateAddress(r.Context(), clearCartFor(cartService, customerID))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, state)
	}
}

// ResetFulfillment restores the session defaults, e.g. on logout.
func ResetFulfillment(manager *fulfillment.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := customerSession(r, manager)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		state, err := session.Reset(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, state)
	}
}
