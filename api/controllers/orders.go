package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/huynhtrandev/brewpoint-backend/api/middleware"
	"github.com/huynhtrandev/brewpoint-backend/api/responses"
	cartsvc "github.com/huynhtrandev/brewpoint-backend/internal/cart"
	"github.com/huynhtrandev/brewpoint-backend/internal/fulfillment"
	ordersvc "github.com/huynhtrandev/brewpoint-backend/internal/orders"
	"github.com/huynhtrandev/brewpoint-backend/pkg/enums"
	pkgerrors "github.com/huynhtrandev/brewpoint-backend/pkg/errors"
	"github.com/huynhtrandev/brewpoint-backend/pkg/logger"
)

// OrdersList returns the customer's order history, newest first.
func OrdersList(svc *ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := middleware.CustomerIDFromContext(r.Context())
		history, err := svc.List(r.Context(), customerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"orders": history})
	}
}

// OrderGet returns a single order.
func OrderGet(svc *ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := middleware.CustomerIDFromContext(r.Context())
		order, err := svc.Get(r.Context(), customerID, chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

// OrderPlace converts the cart and fulfillment state into a placed order.
// The fulfillment readiness gate is enforced here: a request arriving while
// the session is not ready is rejected with enough detail for the storefront
// to render the right remediation.
func OrderPlace(manager *fulfillment.Manager, cartService *cartsvc.Service, svc *ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := middleware.CustomerIDFromContext(r.Context())
		session, err := manager.Session(r.Context(), customerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		state := session.State()

		if !state.IsReadyToOrder {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotReady, "fulfillment is not ready for checkout").WithDetails(map[string]any{
				"order_mode":        state.OrderMode,
				"selected_branch":   state.SelectedBranch,
				"validation_result": state.ValidationResult,
			}))
			return
		}

		cart, err := cartService.Get(r.Context(), customerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if cart.IsEmpty() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty"))
			return
		}

		input := ordersvc.PlaceInput{
			CustomerID:         customerID,
			Mode:               state.OrderMode,
			BranchID:           state.SelectedBranch.ID,
			Items:              cart.Items,
			Subtotal:           cart.Subtotal(),
			DeliveryFee:        state.CurrentDeliveryFee,
			EstimatedTotalMins: state.EstimatedPrepMins + state.EstimatedDeliveryMins,
		}
		if state.OrderMode == enums.OrderModeDelivery {
			input.DeliveryAddress = state.DeliveryAddress.RawAddress
		}

		order, err := svc.Place(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		// The placed order owns its line items now; a lingering cart would
		// double-order on the next checkout.
		if err := cartService.Clear(r.Context(), customerID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

// OrderAdvance moves an order one step along its mode's status path.
// Completed orders are left untouched.
func OrderAdvance(svc *ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := middleware.CustomerIDFromContext(r.Context())
		order, err := svc.Advance(r.Context(), customerID, chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}
