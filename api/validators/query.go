package validators

import (
	"net/http"
	"strings"
	"time"

	"github.com/vendascope/backend/internal/sales"
	pkgerrors "github.com/vendascope/backend/pkg/errors"
)

const dateParamLayout = "2006-01-02"

// ParseDateRange resolves the from/to query parameters into an inclusive
// day range. Both must be provided together; with neither, the range
// defaults to the calendar month containing now.
func ParseDateRange(r *http.Request, now time.Time) (sales.Range, error) {
	query := r.URL.Query()
	return DateRangeFromStrings(
		strings.TrimSpace(query.Get("from")),
		strings.TrimSpace(query.Get("to")),
		now,
	)
}

// DateRangeFromStrings applies the same resolution rules to a from/to pair
// that arrived outside the query string, e.g. in a request body.
func DateRangeFromStrings(from, to string, now time.Time) (sales.Range, error) {
	if from == "" && to == "" {
		return sales.CurrentMonth(now), nil
	}
	if from == "" || to == "" {
		return sales.Range{}, pkgerrors.New(pkgerrors.CodeValidation, "from and to must be provided together")
	}

	start, err := time.Parse(dateParamLayout, from)
	if err != nil {
		return sales.Range{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid from date").
			WithDetails(map[string]any{"field": "from", "expected": dateParamLayout})
	}
	end, err := time.Parse(dateParamLayout, to)
	if err != nil {
		return sales.Range{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid to date").
			WithDetails(map[string]any{"field": "to", "expected": dateParamLayout})
	}

	rng := sales.NewRange(start, end)
	if !rng.Valid() {
		return sales.Range{}, pkgerrors.New(pkgerrors.CodeValidation, "to must not be before from")
	}
	return rng, nil
}
