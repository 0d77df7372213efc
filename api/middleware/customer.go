package middleware

import (
	"net/http"
	"strings"

	"github.com/huynhtrandev/brewpoint-backend/api/responses"
	pkgerrors "github.com/huynhtrandev/brewpoint-backend/pkg/errors"
	"github.com/huynhtrandev/brewpoint-backend/pkg/logger"
)

const customerIDHeader = "X-Customer-Id"

// Customer requires the storefront's customer identity header and makes it
// available to downstream handlers. The storefront attaches it from its own
// auth session; requests without it cannot be bound to a cart or fulfillment
// state.
func Customer(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			customerID := strings.TrimSpace(r.Header.Get(customerIDHeader))
			if customerID == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing customer identity"))
				return
			}

			ctx := WithCustomerID(r.Context(), customerID)
			if logg != nil {
				ctx = logg.WithCustomerID(ctx, customerID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
