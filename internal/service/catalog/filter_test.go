package catalog

import (
	"reflect"
	"testing"

	"agrimart/internal/domain"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestApplyFilterQueryMatchesNameAndDescription(t *testing.T) {
	products := []domain.Product{
		{ID: "a", Name: "Tomato Seeds", Description: "heirloom"},
		{ID: "b", Name: "Pepper Seeds", Description: "contains tomato mix"},
		{ID: "c", Name: "Wheat", Description: "winter crop"},
	}
	got := ApplyFilter(products, Criteria{Query: "  TOMATO "})
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d: %+v", len(got), got)
	}
	if got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestApplyFilterPriceBoundsInclusive(t *testing.T) {
	products := []domain.Product{
		{ID: "low", PriceCents: 99},
		{ID: "min", PriceCents: 100},
		{ID: "mid", PriceCents: 150},
		{ID: "max", PriceCents: 200},
		{ID: "high", PriceCents: 201},
	}
	got := ApplyFilter(products, Criteria{PriceMinCents: int64Ptr(100), PriceMaxCents: int64Ptr(200)})
	if len(got) != 3 {
		t.Fatalf("expected 3 products, got %d: %+v", len(got), got)
	}
	for _, p := range got {
		if p.PriceCents < 100 || p.PriceCents > 200 {
			t.Fatalf("product %s outside bounds: %d", p.ID, p.PriceCents)
		}
	}
}

func TestApplyFilterSortKeys(t *testing.T) {
	products := []domain.Product{
		{ID: "b", Name: "Beta", PriceCents: 300, Rating: 2},
		{ID: "a", Name: "Alpha", PriceCents: 100, Rating: 5},
		{ID: "c", Name: "Gamma", PriceCents: 200, Rating: 4},
	}

	cases := []struct {
		sortKey string
		want    []string
	}{
		{SortName, []string{"a", "b", "c"}},
		{SortPriceAsc, []string{"a", "c", "b"}},
		{SortPriceDesc, []string{"b", "c", "a"}},
		{SortRatingDesc, []string{"a", "c", "b"}},
		{"", []string{"a", "b", "c"}},
	}
	for _, tc := range cases {
		got := ApplyFilter(products, Criteria{SortKey: tc.sortKey})
		ids := make([]string, 0, len(got))
		for _, p := range got {
			ids = append(ids, p.ID)
		}
		if !reflect.DeepEqual(ids, tc.want) {
			t.Fatalf("sort %q: expected %v, got %v", tc.sortKey, tc.want, ids)
		}
	}
}

func TestApplyFilterStableOnTies(t *testing.T) {
	products := []domain.Product{
		{ID: "first", Name: "One", PriceCents: 100},
		{ID: "second", Name: "Two", PriceCents: 100},
		{ID: "third", Name: "Three", PriceCents: 100},
	}
	got := ApplyFilter(products, Criteria{SortKey: SortPriceAsc})
	if got[0].ID != "first" || got[1].ID != "second" || got[2].ID != "third" {
		t.Fatalf("ties must keep input order, got %+v", got)
	}
}

func TestApplyFilterDeterministic(t *testing.T) {
	products := []domain.Product{
		{ID: "b", Name: "Beta", PriceCents: 50},
		{ID: "a", Name: "Alpha", PriceCents: 70},
	}
	c := Criteria{Query: "a", SortKey: SortPriceDesc}
	first := ApplyFilter(products, c)
	second := ApplyFilter(products, c)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same input produced different output: %+v vs %+v", first, second)
	}
}

func TestApplyFilterDoesNotMutateInput(t *testing.T) {
	products := []domain.Product{
		{ID: "z", Name: "Zeta"},
		{ID: "a", Name: "Alpha"},
	}
	ApplyFilter(products, Criteria{SortKey: SortName})
	if products[0].ID != "z" || products[1].ID != "a" {
		t.Fatalf("input slice was reordered: %+v", products)
	}
}

func TestApplyFilterEmptyInput(t *testing.T) {
	got := ApplyFilter(nil, Criteria{Query: "anything"})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}
