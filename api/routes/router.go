package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/huynhtrandev/brewpoint-backend/api/controllers"
	"github.com/huynhtrandev/brewpoint-backend/api/middleware"
	"github.com/huynhtrandev/brewpoint-backend/internal/branches"
	cartsvc "github.com/huynhtrandev/brewpoint-backend/internal/cart"
	"github.com/huynhtrandev/brewpoint-backend/internal/catalog"
	"github.com/huynhtrandev/brewpoint-backend/internal/fulfillment"
	ordersvc "github.com/huynhtrandev/brewpoint-backend/internal/orders"
	"github.com/huynhtrandev/brewpoint-backend/pkg/config"
	"github.com/huynhtrandev/brewpoint-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisP controllers.Pinger,
	directory *branches.Directory,
	cat *catalog.Static,
	manager *fulfillment.Manager,
	cartService *cartsvc.Service,
	ordersService *ordersvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisP))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/menu", controllers.Menu(cat))
		r.Get("/branches", controllers.ListBranches(directory, logg, time.Now))
		r.Get("/branches/{branchId}", controllers.GetBranch(directory, logg, time.Now))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Customer(logg))

			r.Route("/fulfillment", func(r chi.Router) {
				r.Get("/", controllers.FulfillmentState(manager, logg))
				r.Put("/mode", controllers.SetOrderMode(manager, logg))
				r.Put("/branch", controllers.SetBranch(manager, cartService, logg))
				r.Put("/address", controllers.SetAddress(manager, logg))
				r.Post("/address/validate", controllers.ValidateAddress(manager, cartService, logg))
				r.Post("/reset", controllers.ResetFulfillment(manager, logg))
			})

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartGet(cartService, logg))
				r.Post("/items", controllers.CartAddItem(cartService, logg))
				r.Delete("/items", controllers.CartRemoveItem(cartService, logg))
				r.Delete("/", controllers.CartClear(cartService, logg))
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.OrdersList(ordersService, logg))
				r.Post("/", controllers.OrderPlace(manager, cartService, ordersService, logg))
				r.Get("/{orderId}", controllers.OrderGet(ordersService, logg))
				r.Post("/{orderId}/advance", controllers.OrderAdvance(ordersService, logg))
			})
		})
	})

	return r
}
