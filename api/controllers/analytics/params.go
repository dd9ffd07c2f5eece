package analytics

import (
	"net/http"
	"strings"
	"time"

	"github.com/mercura/storefront-analytics/internal/analytics/daterange"
	pkgerrors "github.com/mercura/storefront-analytics/pkg/errors"
)

var timeNowUTC = func() time.Time {
	return time.Now().UTC()
}

// resolveRangeRequest reads preset, date_from and date_to from the
// query string. Endpoints with requireBounds always run over an
// explicit custom window; the others default to this-month when neither
// a preset nor bounds are given.
func resolveRangeRequest(r *http.Request, requireBounds bool) (daterange.Request, error) {
	query := r.URL.Query()
	from := strings.TrimSpace(query.Get("date_from"))
	to := strings.TrimSpace(query.Get("date_to"))

	if requireBounds {
		if from == "" || to == "" {
			return daterange.Request{}, pkgerrors.New(pkgerrors.CodeValidation, "date_from and date_to are required")
		}
		return daterange.Request{Preset: daterange.Custom, From: from, To: to}, nil
	}

	raw := strings.TrimSpace(query.Get("preset"))
	if raw == "" {
		if from != "" || to != "" {
			return daterange.Request{Preset: daterange.Custom, From: from, To: to}, nil
		}
		return daterange.Request{Preset: daterange.ThisMonth}, nil
	}

	preset, err := daterange.ParsePreset(raw)
	if err != nil {
		return daterange.Request{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, err.Error())
	}
	return daterange.Request{Preset: preset, From: from, To: to}, nil
}
