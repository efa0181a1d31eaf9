package roi

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vendascope/backend/internal/sales"
)

func TestComputeFiniteROI(t *testing.T) {
	tests := []struct {
		name       string
		revenue    string
		commission string
		want       string
	}{
		{"thirty percent commission", "100", "30", "42.86"},
		{"half commission", "200", "100", "100"},
		{"small commission", "1000", "10", "1.01"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			revenue := decimal.RequireFromString(tc.revenue)
			commission := decimal.RequireFromString(tc.commission)

			ratio := Compute(revenue, commission)
			if ratio.Unbounded {
				t.Fatalf("expected finite ROI")
			}
			if got := ratio.Percent.String(); got != tc.want {
				t.Fatalf("expected %s%%, got %s%%", tc.want, got)
			}
		})
	}
}

func TestComputeUnboundedROI(t *testing.T) {
	ratio := Compute(decimal.NewFromInt(50), decimal.NewFromInt(50))
	if !ratio.Unbounded {
		t.Fatalf("commission equal to revenue leaves zero investment; ROI should be unbounded")
	}
}

func TestComputeZeroROI(t *testing.T) {
	ratio := Compute(decimal.Zero, decimal.Zero)
	if ratio.Unbounded || !ratio.Percent.IsZero() {
		t.Fatalf("no revenue and no commission should yield zero ROI, got %+v", ratio)
	}
}

func campaignSale(campaign, value, commission string) sales.Sale {
	return sales.Sale{
		PurchaseDate: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		Status:       sales.StatusApproved,
		ProductName:  "Curso A",
		SaleValue:    decimal.RequireFromString(value),
		Commission:   decimal.RequireFromString(commission),
		UTMCampaign:  campaign,
	}
}

func TestCampaignsFoldsByName(t *testing.T) {
	batch := []sales.Sale{
		campaignSale("lancamento", "100", "30"),
		campaignSale("mentoria", "200", "50"),
		campaignSale("lancamento", "100", "30"),
	}

	campaigns := Campaigns(batch)
	if len(campaigns) != 2 {
		t.Fatalf("expected 2 campaigns, got %d", len(campaigns))
	}
	if campaigns[0].Name != "lancamento" || campaigns[1].Name != "mentoria" {
		t.Fatalf("expected first-seen order, got %s, %s", campaigns[0].Name, campaigns[1].Name)
	}
	if got := campaigns[0].Revenue.String(); got != "200" {
		t.Fatalf("expected 200 revenue for lancamento, got %s", got)
	}
	if got := campaigns[0].Commission.String(); got != "60" {
		t.Fatalf("expected 60 commission for lancamento, got %s", got)
	}
	if campaigns[0].ROI.Unbounded {
		t.Fatalf("expected finite ROI")
	}
	if !campaigns[0].CurrentBudget.IsZero() {
		t.Fatalf("current budget should stay zero until the caller supplies spend, got %s",
			campaigns[0].CurrentBudget)
	}
}

func TestCampaignsSkipsUnattributedSales(t *testing.T) {
	batch := []sales.Sale{
		campaignSale("", "100", "30"),
		campaignSale(sales.Unknown, "100", "30"),
		campaignSale("-", "100", "30"),
		campaignSale("real", "100", "30"),
	}

	campaigns := Campaigns(batch)
	if len(campaigns) != 1 {
		t.Fatalf("expected 1 attributed campaign, got %d", len(campaigns))
	}
	if campaigns[0].Name != "real" {
		t.Fatalf("unexpected campaign %q", campaigns[0].Name)
	}
}
