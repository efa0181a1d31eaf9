package sales

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vendascope/backend/internal/feed"
)

// RejectReason classifies why a raw feed row was dropped. Rejections are
// routine data-quality outcomes, not errors; they are counted and the row
// is skipped.
type RejectReason string

const (
	RejectMissingField     RejectReason = "missing_field"
	RejectUnknownStatus    RejectReason = "unknown_status"
	RejectInvalidDate      RejectReason = "invalid_date"
	RejectInvalidValue     RejectReason = "invalid_value"
	RejectNonPositiveValue RejectReason = "non_positive_value"
)

// Rejection describes one dropped row.
type Rejection struct {
	Reason RejectReason
	Field  feed.Field
	Detail string
}

// purchaseDateLayout is the feed's fixed day-month-year format. time.Parse
// is strict about calendar validity, which is exactly what we want:
// "31-02-2024" must be rejected, not rolled into March.
const purchaseDateLayout = "02-01-2006"

var trueTokens = map[string]struct{}{
	"true":       {},
	"verdadeiro": {},
}

// NormalizerConfig carries the feed-revision-dependent knobs: the status
// vocabulary changed across feed versions, so it is configuration rather
// than code.
type NormalizerConfig struct {
	AcceptedStatuses []Status
}

func DefaultNormalizerConfig() NormalizerConfig {
	return NormalizerConfig{
		AcceptedStatuses: []Status{StatusApproved, StatusRefunded},
	}
}

// Normalizer validates and converts raw feed records into Sales.
type Normalizer struct {
	statuses map[Status]struct{}
}

func NewNormalizer(cfg NormalizerConfig) *Normalizer {
	statuses := make(map[Status]struct{}, len(cfg.AcceptedStatuses))
	for _, status := range cfg.AcceptedStatuses {
		statuses[Status(strings.ToLower(string(status)))] = struct{}{}
	}
	return &Normalizer{statuses: statuses}
}

// Normalize converts one raw record into a Sale, or reports why it cannot.
// The conversion is deterministic and side-effect free: the same record
// always produces the same Sale or the same Rejection.
func (n *Normalizer) Normalize(record feed.Record) (Sale, *Rejection) {
	for _, field := range []feed.Field{feed.FieldStatus, feed.FieldPurchaseDate, feed.FieldSaleValue, feed.FieldProductName} {
		if _, ok := record.Get(field); !ok {
			return Sale{}, &Rejection{Reason: RejectMissingField, Field: field}
		}
	}

	status := Status(strings.ToLower(record.Value(feed.FieldStatus)))
	if _, ok := n.statuses[status]; !ok {
		return Sale{}, &Rejection{Reason: RejectUnknownStatus, Field: feed.FieldStatus, Detail: string(status)}
	}

	rawDate := record.Value(feed.FieldPurchaseDate)
	purchaseDate, err := time.Parse(purchaseDateLayout, rawDate)
	if err != nil {
		return Sale{}, &Rejection{Reason: RejectInvalidDate, Field: feed.FieldPurchaseDate, Detail: rawDate}
	}

	rawValue := record.Value(feed.FieldSaleValue)
	saleValue, err := parseDecimal(rawValue)
	if err != nil {
		return Sale{}, &Rejection{Reason: RejectInvalidValue, Field: feed.FieldSaleValue, Detail: rawValue}
	}
	if !saleValue.IsPositive() {
		return Sale{}, &Rejection{Reason: RejectNonPositiveValue, Field: feed.FieldSaleValue, Detail: rawValue}
	}

	// Commission is optional: unparseable or absent means zero, never a
	// rejection.
	commission := decimal.Zero
	if raw, ok := record.Get(feed.FieldCommission); ok {
		if parsed, err := parseDecimal(raw); err == nil && !parsed.IsNegative() {
			commission = parsed
		}
	}

	installments := 0
	if raw, ok := record.Get(feed.FieldInstallments); ok {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			installments = parsed
		}
	}

	return Sale{
		PurchaseDate:  DateOf(purchaseDate),
		TransactionID: record.Value(feed.FieldTransactionID),
		Status:        status,
		Platform:      record.Value(feed.FieldPlatform),
		BuyerName:     record.Value(feed.FieldBuyerName),
		Email:         record.Value(feed.FieldEmail),
		ProductName:   record.Value(feed.FieldProductName),
		SaleValue:     saleValue,
		Commission:    commission,
		Installments:  installments,
		PaymentMethod: defaulted(record, feed.FieldPaymentMethod),
		HasOrderBump:  parseOrderBump(record.Value(feed.FieldOrderBump)),
		State:         defaulted(record, feed.FieldState),
		Country:       defaulted(record, feed.FieldCountry),
		UTMSource:     defaulted(record, feed.FieldUTMSource),
		UTMMedium:     defaulted(record, feed.FieldUTMMedium),
		UTMCampaign:   defaulted(record, feed.FieldUTMCampaign),
	}, nil
}

// parseDecimal handles the feed's Brazilian number format: comma as the
// decimal separator.
func parseDecimal(raw string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	return decimal.NewFromString(normalized)
}

func parseOrderBump(raw string) bool {
	_, ok := trueTokens[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}

func defaulted(record feed.Record, field feed.Field) string {
	if value, ok := record.Get(field); ok {
		return value
	}
	return Unknown
}
