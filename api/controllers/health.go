package controllers

import (
	"context"
	"net/http"

	"github.com/THEGunDevil/Food-E-Commerce-Frontend/api/responses"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/config"
	pkgerrors "github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/errors"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/logger"
	"go.uber.org/multierr"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the mirror store and redis. The storefront API is
// deliberately excluded: the gateway can serve cached and mirrored reads
// while it is down.
func HealthReady(cfg *config.Config, logg *logger.Logger, mirror, cache Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)

		var unavailable error
		checks := map[string]Pinger{"mirror": mirror, "cache": cache}
		for name, dep := range checks {
			if dep == nil {
				continue
			}
			if err := dep.Ping(r.Context()); err != nil {
				unavailable = multierr.Append(unavailable,
					pkgerrors.Wrap(pkgerrors.CodeInternal, err, name+" unavailable"))
			}
		}
		if unavailable != nil {
			responses.WriteError(r.Context(), logg, w, unavailable)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
