package controllers

import (
	"net/http"

	"github.com/vendascope/backend/api/responses"
	"github.com/vendascope/backend/api/validators"
	"github.com/vendascope/backend/internal/analytics"
	"github.com/vendascope/backend/pkg/logger"
)

// Dashboard serves the full aggregated report for the requested date
// range.
func Dashboard(provider SnapshotProvider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		rng, err := validators.ParseDateRange(r, timeNowUTC())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		repo, err := activeSnapshot(provider)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, analytics.BuildReport(repo, rng))
	}
}

// SalesList serves the normalized sales inside the requested date range,
// feed order preserved.
func SalesList(provider SnapshotProvider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		rng, err := validators.ParseDateRange(r, timeNowUTC())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		repo, err := activeSnapshot(provider)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		matched := repo.FilterRange(rng)
		responses.WriteSuccess(w, map[string]any{
			"range": rng,
			"count": len(matched),
			"sales": matched,
		})
	}
}
