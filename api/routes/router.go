package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mercura/storefront-analytics/api/controllers"
	analyticscontrollers "github.com/mercura/storefront-analytics/api/controllers/analytics"
	"github.com/mercura/storefront-analytics/api/middleware"
	"github.com/mercura/storefront-analytics/pkg/config"
	"github.com/mercura/storefront-analytics/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP controllers.Pinger,
	redisP controllers.Pinger,
	analyticsService analyticscontrollers.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	r.Route("/api/admin/v1/analytics", func(r chi.Router) {
		r.Get("/orders", analyticscontrollers.Orders(analyticsService, logg))
		r.Get("/orders/export", analyticscontrollers.OrdersExport(analyticsService, logg))
		r.Get("/products", analyticscontrollers.Products(analyticsService, logg))
		r.Get("/customers", analyticscontrollers.Customers(analyticsService, logg))
	})

	return r
}
