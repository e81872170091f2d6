package catalog

import (
	"sort"
	"strings"

	"agrimart/internal/domain"
)

// Sort keys accepted by ApplyFilter. SortName is the default.
const (
	SortName       = "name"
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
	SortRatingDesc = "rating-desc"
)

// Criteria narrows and orders a product list. Zero values leave the
// corresponding dimension unconstrained.
type Criteria struct {
	Query         string
	PriceMinCents *int64
	PriceMaxCents *int64
	SortKey       string
}

// ApplyFilter is a pure function: it never mutates products and yields
// the same output for the same input, ties broken by input order.
func ApplyFilter(products []domain.Product, c Criteria) []domain.Product {
	query := strings.ToLower(strings.TrimSpace(c.Query))

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		if c.PriceMinCents != nil && p.PriceCents < *c.PriceMinCents {
			continue
		}
		if c.PriceMaxCents != nil && p.PriceCents > *c.PriceMaxCents {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		switch c.SortKey {
		case SortPriceAsc:
			return out[i].PriceCents < out[j].PriceCents
		case SortPriceDesc:
			return out[i].PriceCents > out[j].PriceCents
		case SortRatingDesc:
			return out[i].Rating > out[j].Rating
		default:
			return out[i].Name < out[j].Name
		}
	})
	return out
}
