package controllers

import (
	"context"
	"net/http"

	"github.com/akomcomputer/shopsuite-backend/api/responses"
	"github.com/akomcomputer/shopsuite-backend/pkg/config"
	pkgerrors "github.com/akomcomputer/shopsuite-backend/pkg/errors"
	"github.com/akomcomputer/shopsuite-backend/pkg/logger"
)

// Pinger is any dependency that can answer a liveness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ShopSuite-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady probes every wired dependency. Nil probes are skipped so the
// memory-backed deployment still reports ready.
func HealthReady(cfg *config.Config, logg *logger.Logger, redisP, dbP Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ShopSuite-Env", cfg.App.Env)

		checks := map[string]string{}
		healthy := true

		probe := func(name string, p Pinger) {
			if p == nil {
				return
			}
			if err := p.Ping(r.Context()); err != nil {
				checks[name] = "down"
				healthy = false
				if logg != nil {
					ctx := logg.WithField(r.Context(), "dependency", name)
					logg.Error(ctx, "health.probe.failed", err)
				}
				return
			}
			checks[name] = "up"
		}

		probe("redis", redisP)
		probe("db", dbP)

		if !healthy {
			err := pkgerrors.New(pkgerrors.CodeDependency, "dependency unavailable").WithDetails(checks)
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		checks["status"] = "ready"
		responses.WriteSuccess(w, checks)
	}
}
