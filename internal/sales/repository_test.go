package sales

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func saleOn(day time.Time, product string) Sale {
	return Sale{
		PurchaseDate: day,
		Status:       StatusApproved,
		ProductName:  product,
		SaleValue:    decimal.NewFromInt(100),
	}
}

func TestFilterRangeBoundsInclusive(t *testing.T) {
	june1 := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	june5 := time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)
	june10 := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	may31 := time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC)
	june11 := time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC)

	repo := NewRepository([]Sale{
		saleOn(may31, "before"),
		saleOn(june1, "lower bound"),
		saleOn(june5, "inside"),
		saleOn(june10, "upper bound"),
		saleOn(june11, "after"),
	})

	got := repo.FilterRange(NewRange(june1, june10))
	if len(got) != 3 {
		t.Fatalf("expected 3 sales in range, got %d", len(got))
	}
	for i, want := range []string{"lower bound", "inside", "upper bound"} {
		if got[i].ProductName != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, got[i].ProductName)
		}
	}
}

func TestFilterRangePreservesInsertionOrder(t *testing.T) {
	day := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
	repo := NewRepository([]Sale{
		saleOn(day, "first"),
		saleOn(day, "second"),
		saleOn(day, "third"),
	})

	got := repo.FilterRange(NewRange(day, day))
	if len(got) != 3 {
		t.Fatalf("expected 3 sales, got %d", len(got))
	}
	for i, want := range []string{"first", "second", "third"} {
		if got[i].ProductName != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, got[i].ProductName)
		}
	}
}

func TestFilterRangeInvertedRangeIsEmpty(t *testing.T) {
	day := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
	repo := NewRepository([]Sale{saleOn(day, "only")})

	rng := Range{
		From: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
	if got := repo.FilterRange(rng); len(got) != 0 {
		t.Fatalf("inverted range should match nothing, got %d sales", len(got))
	}
}

func TestRepositoryAllReturnsACopy(t *testing.T) {
	day := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
	repo := NewRepository([]Sale{saleOn(day, "original")})

	all := repo.All()
	all[0].ProductName = "mutated"

	if got := repo.All()[0].ProductName; got != "original" {
		t.Fatalf("mutating a returned slice must not affect the snapshot, got %q", got)
	}
}

func TestCurrentMonthRange(t *testing.T) {
	now := time.Date(2024, time.June, 17, 15, 30, 0, 0, time.UTC)
	rng := CurrentMonth(now)

	if want := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC); !rng.From.Equal(want) {
		t.Fatalf("expected From %v, got %v", want, rng.From)
	}
	if want := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC); !rng.To.Equal(want) {
		t.Fatalf("expected To %v, got %v", want, rng.To)
	}
}
