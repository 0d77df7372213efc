package controllers

import (
	"net/http"

	"github.com/huynhtrandev/brewpoint-backend/api/middleware"
	"github.com/huynhtrandev/brewpoint-backend/api/responses"
	"github.com/huynhtrandev/brewpoint-backend/api/validators"
	cartsvc "github.com/huynhtrandev/brewpoint-backend/internal/cart"
	"github.com/huynhtrandev/brewpoint-backend/pkg/enums"
	pkgerrors "github.com/huynhtrandev/brewpoint-backend/pkg/errors"
	"github.com/huynhtrandev/brewpoint-backend/pkg/logger"
)

type cartResponse struct {
	Items    []cartsvc.Item `json:"items"`
	Subtotal int            `json:"subtotal"`
}

func newCartResponse(cart *cartsvc.Cart) cartResponse {
	items := cart.Items
	if items == nil {
		items = []cartsvc.Item{}
	}
	return cartResponse{Items: items, Subtotal: cart.Subtotal()}
}

// CartGet returns the customer's cart.
func CartGet(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := middleware.CustomerIDFromContext(r.Context())
		cart, err := svc.Get(r.Context(), customerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartResponse(cart))
	}
}

type addCartItemRequest struct {
	ProductID  string   `json:"product_id" validate:"required"`
	Size       string   `json:"size" validate:"required"`
	SugarLevel string   `json:"sugar_level" validate:"required"`
	IceLevel   string   `json:"ice_level" validate:"required"`
	ToppingIDs []string `json:"topping_ids"`
	Quantity   int      `json:"quantity" validate:"required,min=1"`
}

func (r addCartItemRequest) toInput() (cartsvc.AddInput, error) {
	size, err := enums.ParseDrinkSize(r.Size)
	if err != nil {
		return cartsvc.AddInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid size")
	}
	sugar, err := enums.ParseAdjustmentLevel(r.SugarLevel)
	if err != nil {
		return cartsvc.AddInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sugar level")
	}
	ice, err := enums.ParseAdjustmentLevel(r.IceLevel)
	if err != nil {
		return cartsvc.AddInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid ice level")
	}
	return cartsvc.AddInput{
		ProductID:  r.ProductID,
		Size:       size,
		SugarLevel: sugar,
		IceLevel:   ice,
		ToppingIDs: r.ToppingIDs,
		Quantity:   r.Quantity,
	}, nil
}

// CartAddItem adds a drink configuration, merging identical configurations
// into one line.
func CartAddItem(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		customerID := middleware.CustomerIDFromContext(r.Context())
		cart, err := svc.Add(r.Context(), customerID, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartResponse(cart))
	}
}

// CartRemoveItem removes one line by its configuration key, passed as the
// "key" query parameter since keys contain pipe separators.
func CartRemoveItem(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Query().Get("key")
		if key == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "key query parameter is required"))
			return
		}

		customerID := middleware.CustomerIDFromContext(r.Context())
		cart, err := svc.Remove(r.Context(), customerID, key)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartResponse(cart))
	}
}

// CartClear empties the cart.
func CartClear(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := middleware.CustomerIDFromContext(r.Context())
		if err := svc.Clear(r.Context(), customerID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartResponse(&cartsvc.Cart{}))
	}
}
