package analytics

import (
	"github.com/vendascope/backend/internal/sales"
)

// BuildReport assembles the full dashboard payload for one date range.
// KPIs and breakdowns cover approved sales only; refund totals are bounded
// by the requested range itself, not by the span of the data present.
func BuildReport(repo *sales.Repository, rng sales.Range) Report {
	inRange := repo.FilterRange(rng)

	approved := make([]sales.Sale, 0, len(inRange))
	for _, sale := range inRange {
		if sale.Status == sales.StatusApproved {
			approved = append(approved, sale)
		}
	}

	return Report{
		Range:         rng,
		KPIs:          KPIs(approved),
		Refunds:       RefundKPIs(repo.All(), rng),
		SalesByDay:    SalesByDay(approved, rng),
		ByProduct:     ByProduct(approved),
		ByAcquisition: ByAcquisition(approved),
		ByPayment:     ByPaymentMethod(approved),
		ByState:       ByState(approved),
	}
}
