package controllers

import (
	"net/http"

	"github.com/vendascope/backend/api/responses"
	"github.com/vendascope/backend/pkg/config"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-VendaScope-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only once a sales snapshot has been loaded, so
// load balancers hold traffic until the dashboard can actually answer.
func HealthReady(cfg *config.Config, provider SnapshotProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-VendaScope-Env", cfg.App.Env)
		if !provider.Ready() {
			responses.WriteSuccessStatus(w, http.StatusServiceUnavailable, map[string]string{"status": "loading"})
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
