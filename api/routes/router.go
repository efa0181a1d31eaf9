package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vendascope/backend/api/controllers"
	"github.com/vendascope/backend/api/middleware"
	"github.com/vendascope/backend/internal/roi"
	"github.com/vendascope/backend/pkg/config"
	"github.com/vendascope/backend/pkg/logger"
)

// Store is the snapshot side of sales.Store the router needs.
type Store interface {
	controllers.SnapshotProvider
	controllers.Refresher
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	store Store,
	advisor roi.Advisor,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, store))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/sales", controllers.SalesList(store, logg))
		r.Get("/dashboard", controllers.Dashboard(store, logg))
		r.Route("/roi", func(r chi.Router) {
			r.Get("/campaigns", controllers.ROICampaigns(store, logg))
			r.Post("/suggestions", controllers.ROISuggestions(store, advisor, cfg.Advisor.DefaultOverallBudget, logg))
		})
		r.Post("/refresh", controllers.Refresh(store, logg))
	})

	return r
}
