package analytics

import (
	"net/http"

	"github.com/mercura/storefront-analytics/api/responses"
	"github.com/mercura/storefront-analytics/pkg/logger"
)

func Products(service Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		req, err := resolveRangeRequest(r, true)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := service.ProductsReport(ctx, req)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
