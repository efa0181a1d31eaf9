package controllers

import (
	"net/http"

	"github.com/vendascope/backend/api/responses"
	"github.com/vendascope/backend/pkg/logger"
)

// Refresh forces an immediate snapshot refresh outside the scheduled
// interval.
func Refresh(refresher Refresher, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := refresher.Refresh(ctx); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "refreshed"})
	}
}
