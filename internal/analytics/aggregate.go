package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/vendascope/backend/internal/sales"
)

const (
	dayKeyLayout   = "2006-01-02"
	dayLabelLayout = "02/01"
)

// stateLimit caps the by-state breakdown to the dashboard's top slots.
const stateLimit = 10

// KPIs computes the headline numbers over the given approved sales.
// An empty input yields all-zero KPIs, never an error.
func KPIs(approved []sales.Sale) KPI {
	kpi := KPI{
		TotalRevenue:  decimal.Zero,
		NetCommission: decimal.Zero,
		AverageTicket: decimal.Zero,
	}
	for _, sale := range approved {
		kpi.TotalRevenue = kpi.TotalRevenue.Add(sale.SaleValue)
		kpi.NetCommission = kpi.NetCommission.Add(sale.Commission)
		kpi.SalesCount++
	}
	if kpi.SalesCount > 0 {
		kpi.AverageTicket = kpi.TotalRevenue.Div(decimal.NewFromInt(int64(kpi.SalesCount)))
	}
	return kpi
}

// RefundKPIs totals refunded sales whose purchase date falls inside the
// requested range. The window is always the caller's requested range, not
// the span of whatever data happens to be present.
func RefundKPIs(all []sales.Sale, rng sales.Range) RefundKPI {
	kpi := RefundKPI{TotalRefunded: decimal.Zero}
	for _, sale := range all {
		if sale.Status != sales.StatusRefunded {
			continue
		}
		if !rng.Contains(sale.PurchaseDate) {
			continue
		}
		kpi.TotalRefunded = kpi.TotalRefunded.Add(sale.SaleValue)
		kpi.RefundedCount++
	}
	return kpi
}

// SalesByDay builds the daily revenue series for the range. Every calendar
// day in the range appears exactly once, in chronological order, zero-valued
// when no sale happened.
func SalesByDay(approved []sales.Sale, rng sales.Range) []PeriodPoint {
	if !rng.Valid() {
		return nil
	}

	index := make(map[string]int)
	var points []PeriodPoint
	for day := rng.From; !day.After(rng.To); day = day.AddDate(0, 0, 1) {
		key := day.Format(dayKeyLayout)
		index[key] = len(points)
		points = append(points, PeriodPoint{
			Key:     key,
			Label:   day.Format(dayLabelLayout),
			Revenue: decimal.Zero,
		})
	}

	for _, sale := range approved {
		key := sale.PurchaseDate.Format(dayKeyLayout)
		i, ok := index[key]
		if !ok {
			continue
		}
		points[i].Revenue = points[i].Revenue.Add(sale.SaleValue)
		points[i].Count++
	}
	return points
}

// ByProduct groups approved sales per product, ordered by revenue
// descending. Ties keep first-seen feed order; colors follow the final
// output position.
func ByProduct(approved []sales.Sale) []ProductSlice {
	index := make(map[string]int)
	var slices []ProductSlice
	for _, sale := range approved {
		i, ok := index[sale.ProductName]
		if !ok {
			i = len(slices)
			index[sale.ProductName] = i
			slices = append(slices, ProductSlice{Name: sale.ProductName, Revenue: decimal.Zero})
		}
		slices[i].Sales++
		slices[i].Revenue = slices[i].Revenue.Add(sale.SaleValue)
	}

	sort.SliceStable(slices, func(a, b int) bool {
		return slices[a].Revenue.GreaterThan(slices[b].Revenue)
	})
	for i := range slices {
		slices[i].Fill = fillFor(i)
	}
	return slices
}

// ByAcquisition groups approved sales per (source, medium, campaign)
// attribution triple, ordered by sales count descending. Blank or unknown
// attribution values render as the placeholder.
func ByAcquisition(approved []sales.Sale) []AcquisitionSlice {
	type tripleKey struct {
		source, medium, campaign string
	}

	index := make(map[tripleKey]int)
	var slices []AcquisitionSlice
	for _, sale := range approved {
		key := tripleKey{
			source:   attributionLabel(sale.UTMSource),
			medium:   attributionLabel(sale.UTMMedium),
			campaign: attributionLabel(sale.UTMCampaign),
		}
		i, ok := index[key]
		if !ok {
			i = len(slices)
			index[key] = i
			slices = append(slices, AcquisitionSlice{
				Source:   key.source,
				Medium:   key.medium,
				Campaign: key.campaign,
			})
		}
		slices[i].Sales++
	}

	sort.SliceStable(slices, func(a, b int) bool {
		return slices[a].Sales > slices[b].Sales
	})
	return slices
}

func attributionLabel(value string) string {
	if value == "" || value == sales.Unknown {
		return AttributionPlaceholder
	}
	return value
}

// ByPaymentMethod groups approved sales per payment method, ordered by
// sales count descending.
func ByPaymentMethod(approved []sales.Sale) []PaymentMethodSlice {
	index := make(map[string]int)
	var slices []PaymentMethodSlice
	for _, sale := range approved {
		i, ok := index[sale.PaymentMethod]
		if !ok {
			i = len(slices)
			index[sale.PaymentMethod] = i
			slices = append(slices, PaymentMethodSlice{Name: sale.PaymentMethod})
		}
		slices[i].Sales++
	}

	sort.SliceStable(slices, func(a, b int) bool {
		return slices[a].Sales > slices[b].Sales
	})
	for i := range slices {
		slices[i].Fill = fillFor(i)
	}
	return slices
}

// ByState groups approved sales per buyer state, ordered by sales count
// descending, keeping only the top slots.
func ByState(approved []sales.Sale) []StateSlice {
	index := make(map[string]int)
	var slices []StateSlice
	for _, sale := range approved {
		i, ok := index[sale.State]
		if !ok {
			i = len(slices)
			index[sale.State] = i
			slices = append(slices, StateSlice{State: sale.State})
		}
		slices[i].Sales++
	}

	sort.SliceStable(slices, func(a, b int) bool {
		return slices[a].Sales > slices[b].Sales
	})
	if len(slices) > stateLimit {
		slices = slices[:stateLimit]
	}
	return slices
}
