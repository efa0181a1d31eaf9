package roi

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vendascope/backend/pkg/errors"
)

// Suggestion is one campaign's recommended slice of the overall budget.
type Suggestion struct {
	CampaignName    string          `json:"campaign_name"`
	SuggestedBudget decimal.Decimal `json:"suggested_budget"`
	Rationale       string          `json:"rationale"`
}

// Advisor turns campaign performance into budget suggestions. The
// deterministic allocator below is the default; an LLM-backed advisor can
// sit behind the same interface.
type Advisor interface {
	Suggest(ctx context.Context, campaigns []Campaign, overallBudget decimal.Decimal) ([]Suggestion, error)
}

// ProportionalAdvisor splits the overall budget across campaigns in
// proportion to their ROI. Unbounded-ROI campaigns outrank every finite
// one; with no signal at all the budget splits evenly.
type ProportionalAdvisor struct{}

func NewProportionalAdvisor() *ProportionalAdvisor {
	return &ProportionalAdvisor{}
}

func (a *ProportionalAdvisor) Suggest(ctx context.Context, campaigns []Campaign, overallBudget decimal.Decimal) ([]Suggestion, error) {
	if len(campaigns) == 0 {
		return nil, errors.New(errors.CodeValidation, "no campaigns to allocate budget across")
	}
	if !overallBudget.IsPositive() {
		return nil, errors.New(errors.CodeValidation, "overall budget must be positive")
	}

	weights := make([]decimal.Decimal, len(campaigns))
	total := decimal.Zero

	maxFinite := decimal.Zero
	for _, campaign := range campaigns {
		if !campaign.ROI.Unbounded && campaign.ROI.Percent.GreaterThan(maxFinite) {
			maxFinite = campaign.ROI.Percent
		}
	}
	// Unbounded campaigns weigh in above the best finite performer.
	unboundedWeight := maxFinite.Mul(decimal.NewFromInt(2))
	if !unboundedWeight.IsPositive() {
		unboundedWeight = hundred
	}

	for i, campaign := range campaigns {
		switch {
		case campaign.ROI.Unbounded:
			weights[i] = unboundedWeight
		case campaign.ROI.Percent.IsPositive():
			weights[i] = campaign.ROI.Percent
		default:
			weights[i] = decimal.Zero
		}
		total = total.Add(weights[i])
	}

	suggestions := make([]Suggestion, len(campaigns))
	if total.IsZero() {
		// No performance signal: split evenly.
		share := overallBudget.Div(decimal.NewFromInt(int64(len(campaigns)))).Round(2)
		for i, campaign := range campaigns {
			suggestions[i] = Suggestion{
				CampaignName:    campaign.Name,
				SuggestedBudget: share,
				Rationale:       "no ROI signal yet; splitting the budget evenly to gather data",
			}
		}
		return suggestions, nil
	}

	for i, campaign := range campaigns {
		share := overallBudget.Mul(weights[i]).Div(total).Round(2)
		suggestions[i] = Suggestion{
			CampaignName:    campaign.Name,
			SuggestedBudget: share,
			Rationale:       rationaleFor(campaign, weights[i], total),
		}
	}
	return suggestions, nil
}

func rationaleFor(campaign Campaign, weight, total decimal.Decimal) string {
	switch {
	case campaign.ROI.Unbounded:
		return "commission earned with no measured investment; prioritizing while the signal holds"
	case weight.IsZero():
		return "no positive return measured; holding budget at zero until performance improves"
	default:
		percent := weight.Div(total).Mul(hundred).Round(1)
		return "allocating " + percent.String() + "% of the budget in proportion to measured ROI"
	}
}
