package roi

import (
	"github.com/shopspring/decimal"

	"github.com/vendascope/backend/internal/sales"
)

// Ratio is a campaign's return on investment. Percent is rounded to two
// places; Unbounded marks the commission-with-zero-investment case, where
// no finite percentage applies.
type Ratio struct {
	Percent   decimal.Decimal `json:"percent"`
	Unbounded bool            `json:"unbounded"`
}

// Campaign is one UTM campaign's performance over approved sales.
type Campaign struct {
	Name          string          `json:"name"`
	Revenue       decimal.Decimal `json:"revenue"`
	Commission    decimal.Decimal `json:"commission"`
	ROI           Ratio           `json:"roi"`
	CurrentBudget decimal.Decimal `json:"current_budget"`
}

var hundred = decimal.NewFromInt(100)

// Compute derives ROI from a campaign's revenue and commission. The
// investment is what the revenue cost to produce: revenue minus commission
// when positive, otherwise zero. Commission earned on zero investment has
// unbounded return.
func Compute(revenue, commission decimal.Decimal) Ratio {
	investment := revenue.Sub(commission)
	if !investment.IsPositive() {
		if commission.IsPositive() {
			return Ratio{Unbounded: true}
		}
		return Ratio{Percent: decimal.Zero}
	}
	return Ratio{Percent: commission.Div(investment).Mul(hundred).Round(2)}
}

// Campaigns folds approved sales into per-campaign performance, first-seen
// order. Sales without a usable campaign name are skipped: ROI is only
// meaningful for attributed traffic.
func Campaigns(approved []sales.Sale) []Campaign {
	index := make(map[string]int)
	var campaigns []Campaign
	for _, sale := range approved {
		name := sale.UTMCampaign
		if name == "" || name == sales.Unknown || name == "-" {
			continue
		}
		i, ok := index[name]
		if !ok {
			i = len(campaigns)
			index[name] = i
			campaigns = append(campaigns, Campaign{
				Name:          name,
				Revenue:       decimal.Zero,
				Commission:    decimal.Zero,
				CurrentBudget: decimal.Zero,
			})
		}
		campaigns[i].Revenue = campaigns[i].Revenue.Add(sale.SaleValue)
		campaigns[i].Commission = campaigns[i].Commission.Add(sale.Commission)
	}

	// CurrentBudget stays zero: ad spend is not in the sales feed, so the
	// caller supplies it when known.
	for i := range campaigns {
		campaigns[i].ROI = Compute(campaigns[i].Revenue, campaigns[i].Commission)
	}
	return campaigns
}
