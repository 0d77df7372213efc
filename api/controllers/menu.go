package controllers

import (
	"net/http"

	"github.com/huynhtrandev/brewpoint-backend/api/responses"
	"github.com/huynhtrandev/brewpoint-backend/internal/catalog"
)

// Menu returns the drinks and toppings the storefront sells.
func Menu(cat *catalog.Static) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"products": cat.Products(),
			"toppings": cat.Toppings(),
		})
	}
}
