package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/mercura/storefront-analytics/api/responses"
	"github.com/mercura/storefront-analytics/pkg/config"
	pkgerrors "github.com/mercura/storefront-analytics/pkg/errors"
	"github.com/mercura/storefront-analytics/pkg/logger"
)

const envHeader = "X-Mercura-Env"

// Pinger is implemented by the db and redis clients.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, dbP, redisP Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		checks := []struct {
			name   string
			pinger Pinger
		}{
			{"postgres", dbP},
			{"redis", redisP},
		}
		for _, check := range checks {
			if check.pinger == nil {
				continue
			}
			if err := check.pinger.Ping(ctx); err != nil {
				responses.WriteError(ctx, logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, check.name+" not reachable").
						WithDetails(map[string]string{"dependency": check.name}))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
