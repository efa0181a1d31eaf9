package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the lower-cased sale status from the feed.
type Status string

const (
	StatusApproved Status = "aprovada"
	StatusRefunded Status = "reembolsada"
)

// Unknown is the sentinel for optional categorical fields the feed left
// blank (state, country, UTM attribution, payment method).
const Unknown = "N/A"

// Sale is one validated, fully typed sale transaction. Every Sale in a
// repository passed normalization; fields are never partially populated.
type Sale struct {
	PurchaseDate  time.Time       `json:"purchase_date"`
	TransactionID string          `json:"transaction_id"`
	Status        Status          `json:"status"`
	Platform      string          `json:"platform"`
	BuyerName     string          `json:"buyer_name"`
	Email         string          `json:"email"`
	ProductName   string          `json:"product_name"`
	SaleValue     decimal.Decimal `json:"sale_value"`
	Commission    decimal.Decimal `json:"commission"`
	Installments  int             `json:"installments"`
	PaymentMethod string          `json:"payment_method"`
	HasOrderBump  bool            `json:"has_order_bump"`
	State         string          `json:"state"`
	Country       string          `json:"country"`
	UTMSource     string          `json:"utm_source"`
	UTMMedium     string          `json:"utm_medium"`
	UTMCampaign   string          `json:"utm_campaign"`
}

// Range is an inclusive calendar-day window.
type Range struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// NewRange builds a range truncated to day granularity in UTC.
func NewRange(from, to time.Time) Range {
	return Range{From: DateOf(from), To: DateOf(to)}
}

// CurrentMonth returns the calendar month containing now, the dashboard's
// default window.
func CurrentMonth(now time.Time) Range {
	year, month, _ := now.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return Range{From: first, To: last}
}

// Valid reports whether the range is non-inverted.
func (r Range) Valid() bool {
	return !r.From.After(r.To)
}

// Contains reports whether t falls inside the range at day granularity.
func (r Range) Contains(t time.Time) bool {
	day := DateOf(t)
	return !day.Before(r.From) && !day.After(r.To)
}

// DateOf truncates a timestamp to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
