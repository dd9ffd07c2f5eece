package analytics

import (
	"fmt"
	"net/http"

	"github.com/mercura/storefront-analytics/api/responses"
	"github.com/mercura/storefront-analytics/internal/analytics/export"
	pkgerrors "github.com/mercura/storefront-analytics/pkg/errors"
	"github.com/mercura/storefront-analytics/pkg/logger"
)

func OrdersExport(service Service, logg *logger.Logger) http.HandlerFunc {
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

		archive, err := export.OrdersArchive(result)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "building export archive"))
			return
		}

		w.Header().Set("Content-Type", "application/zip")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(timeNowUTC())))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(archive); err != nil && logg != nil {
			logg.Error(ctx, "writing export archive", err)
		}
	}
}
