// Package analytics exposes the admin dashboard's reporting endpoints.
package analytics

import (
	"context"
	"net/http"

	"github.com/mercura/storefront-analytics/api/responses"
	"github.com/mercura/storefront-analytics/internal/analytics"
	"github.com/mercura/storefront-analytics/internal/analytics/daterange"
	"github.com/mercura/storefront-analytics/pkg/logger"
)

// Service is the reporting surface the handlers depend on.
type Service interface {
	OrdersReport(ctx context.Context, req daterange.Request) (analytics.OrderAnalytics, error)
	ProductsReport(ctx context.Context, req daterange.Request) (analytics.ProductAnalytics, error)
	CustomersReport(ctx context.Context, req daterange.Request) (analytics.CustomerAnalytics, error)
}

func Orders(service Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		req, err := resolveRangeRequest(r, false)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := service.OrdersReport(ctx, req)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
