package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/vendascope/backend/api/responses"
	"github.com/vendascope/backend/api/validators"
	"github.com/vendascope/backend/internal/roi"
	"github.com/vendascope/backend/internal/sales"
	pkgerrors "github.com/vendascope/backend/pkg/errors"
	"github.com/vendascope/backend/pkg/logger"
)

// ROICampaigns serves per-campaign performance for the requested date
// range, approved sales only.
func ROICampaigns(provider SnapshotProvider, logg *logger.Logger) http.HandlerFunc {
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

		campaigns := roi.Campaigns(approvedInRange(repo, rng))
		responses.WriteSuccess(w, map[string]any{
			"range":     rng,
			"campaigns": campaigns,
		})
	}
}

type roiCampaignInput struct {
	Name          string          `json:"name" validate:"required"`
	ROIPercent    decimal.Decimal `json:"roi_percent"`
	ROIUnbounded  bool            `json:"roi_unbounded"`
	CurrentBudget decimal.Decimal `json:"current_budget"`
}

type roiSuggestionsRequest struct {
	OverallBudget *decimal.Decimal   `json:"overall_budget"`
	Campaigns     []roiCampaignInput `json:"campaigns" validate:"omitempty,dive"`
	From          string             `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To            string             `json:"to" validate:"omitempty,datetime=2006-01-02"`
}

// ROISuggestions allocates an overall budget across campaigns. When the
// body omits overall_budget, the configured default applies. The caller
// may pass explicit campaign figures; otherwise they are measured from the
// snapshot over the requested window.
func ROISuggestions(provider SnapshotProvider, advisor roi.Advisor, defaultBudget decimal.Decimal, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req roiSuggestionsRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		budget := defaultBudget
		if req.OverallBudget != nil {
			budget = *req.OverallBudget
		}
		if !budget.IsPositive() {
			responses.WriteError(ctx, logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "overall_budget must be positive"))
			return
		}

		if len(req.Campaigns) > 0 {
			campaigns := make([]roi.Campaign, len(req.Campaigns))
			for i, in := range req.Campaigns {
				campaigns[i] = roi.Campaign{
					Name:          in.Name,
					ROI:           roi.Ratio{Percent: in.ROIPercent, Unbounded: in.ROIUnbounded},
					CurrentBudget: in.CurrentBudget,
				}
			}
			suggestions, err := advisor.Suggest(ctx, campaigns, budget)
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			responses.WriteSuccess(w, map[string]any{"suggestions": suggestions})
			return
		}

		rng, err := validators.DateRangeFromStrings(req.From, req.To, timeNowUTC())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		repo, err := activeSnapshot(provider)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		campaigns := roi.Campaigns(approvedInRange(repo, rng))
		suggestions, err := advisor.Suggest(ctx, campaigns, budget)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"range":       rng,
			"suggestions": suggestions,
		})
	}
}

func approvedInRange(repo *sales.Repository, rng sales.Range) []sales.Sale {
	inRange := repo.FilterRange(rng)
	approved := make([]sales.Sale, 0, len(inRange))
	for _, sale := range inRange {
		if sale.Status == sales.StatusApproved {
			approved = append(approved, sale)
		}
	}
	return approved
}
