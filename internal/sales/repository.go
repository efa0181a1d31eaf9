package sales

// Repository is an immutable snapshot of normalized sales in feed order.
// Refreshes never mutate a repository; they build a new one and swap the
// pointer, so readers can hold a snapshot for as long as they like.
type Repository struct {
	sales []Sale
}

func NewRepository(sales []Sale) *Repository {
	owned := make([]Sale, len(sales))
	copy(owned, sales)
	return &Repository{sales: owned}
}

// All returns every sale in insertion order.
func (r *Repository) All() []Sale {
	out := make([]Sale, len(r.sales))
	copy(out, r.sales)
	return out
}

// FilterRange returns the sales whose purchase date falls inside the range,
// bounds inclusive, preserving insertion order. An inverted range matches
// nothing.
func (r *Repository) FilterRange(rng Range) []Sale {
	if !rng.Valid() {
		return nil
	}
	var out []Sale
	for _, sale := range r.sales {
		if rng.Contains(sale.PurchaseDate) {
			out = append(out, sale)
		}
	}
	return out
}

func (r *Repository) Len() int {
	return len(r.sales)
}
