package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/vendascope/backend/internal/sales"
)

// chartPalette holds the dashboard's five series colors. Slots are assigned
// by output position and cycle when a breakdown has more than five entries.
var chartPalette = [5]string{
	"hsl(var(--chart-1))",
	"hsl(var(--chart-2))",
	"hsl(var(--chart-3))",
	"hsl(var(--chart-4))",
	"hsl(var(--chart-5))",
}

func fillFor(position int) string {
	return chartPalette[position%len(chartPalette)]
}

// AttributionPlaceholder replaces blank or unknown UTM values in the
// acquisition breakdown so chart axes never render empty labels.
const AttributionPlaceholder = "-"

// KPI carries the headline numbers for approved sales in the window.
type KPI struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	NetCommission decimal.Decimal `json:"net_commission"`
	SalesCount    int             `json:"sales_count"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
}

// RefundKPI carries refund volumes for the requested window.
type RefundKPI struct {
	TotalRefunded decimal.Decimal `json:"total_refunded"`
	RefundedCount int             `json:"refunded_count"`
}

// PeriodPoint is one day of the revenue series. Key is the stable
// machine-readable date, Label the short axis label.
type PeriodPoint struct {
	Key     string          `json:"key"`
	Label   string          `json:"label"`
	Revenue decimal.Decimal `json:"revenue"`
	Count   int             `json:"count"`
}

// ProductSlice is one product's share of revenue.
type ProductSlice struct {
	Name    string          `json:"name"`
	Sales   int             `json:"sales"`
	Revenue decimal.Decimal `json:"revenue"`
	Fill    string          `json:"fill"`
}

// AcquisitionSlice is one (source, medium, campaign) attribution bucket.
type AcquisitionSlice struct {
	Source   string `json:"source"`
	Medium   string `json:"medium"`
	Campaign string `json:"campaign"`
	Sales    int    `json:"sales"`
}

// PaymentMethodSlice is one payment method's sales count.
type PaymentMethodSlice struct {
	Name  string `json:"name"`
	Sales int    `json:"sales"`
	Fill  string `json:"fill"`
}

// StateSlice is one buyer state's sales count.
type StateSlice struct {
	State string `json:"state"`
	Sales int    `json:"sales"`
}

// Report is the complete dashboard payload for one date range.
type Report struct {
	Range         sales.Range          `json:"range"`
	KPIs          KPI                  `json:"kpis"`
	Refunds       RefundKPI            `json:"refunds"`
	SalesByDay    []PeriodPoint        `json:"sales_by_day"`
	ByProduct     []ProductSlice       `json:"by_product"`
	ByAcquisition []AcquisitionSlice   `json:"by_acquisition"`
	ByPayment     []PaymentMethodSlice `json:"by_payment_method"`
	ByState       []StateSlice         `json:"by_state"`
}
