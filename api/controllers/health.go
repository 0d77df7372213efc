package controllers

import (
	"context"
	"net/http"

	"github.com/huynhtrandev/brewpoint-backend/api/responses"
	"github.com/huynhtrandev/brewpoint-backend/pkg/config"
	pkgerrors "github.com/huynhtrandev/brewpoint-backend/pkg/errors"
	"github.com/huynhtrandev/brewpoint-backend/pkg/logger"
)

// Pinger is satisfied by backing stores that can report liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-BrewPoint-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, redisP Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-BrewPoint-Env", cfg.App.Env)

		if redisP != nil {
			if err := redisP.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis not reachable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
