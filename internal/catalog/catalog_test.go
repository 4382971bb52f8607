package catalog

import (
	"context"
	"testing"

	"techstore/internal/domain"
	"techstore/internal/storage"
	"techstore/internal/storage/memory"
)

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "MacBook Pro", Description: "Powerful laptop", PriceCents: 249999, Category: domain.CategoryComputers, Rating: 4.8},
		{ID: 2, Name: "iPhone 15 Pro", Description: "Latest iPhone", PriceCents: 99999, Category: domain.CategoryPhones, Rating: 4.9},
		{ID: 3, Name: "Galaxy S24", Description: "Android flagship", PriceCents: 89999, Category: domain.CategoryPhones, Rating: 4.7},
		{ID: 4, Name: "WH-1000XM5", Description: "Noise-cancelling headphones", PriceCents: 39999, Category: domain.CategoryElectronics, Rating: 4.8},
	}
}

func TestFilterByCategoryAllReturnsFullCatalog(t *testing.T) {
	s := New(testProducts(), nil)
	got := s.FilterByCategory(domain.CategoryAll)
	if len(got) != 4 {
		t.Fatalf("expected full catalog, got %d products", len(got))
	}
	for i, p := range got {
		if p.ID != i+1 {
			t.Fatalf("catalog order not preserved: %+v", got)
		}
	}
}

func TestFilterByCategorySubset(t *testing.T) {
	s := New(testProducts(), nil)
	got := s.FilterByCategory(domain.CategoryPhones)
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 3 {
		t.Fatalf("unexpected phones subset: %+v", got)
	}
}

func TestSearchMatchesNameDescriptionCategory(t *testing.T) {
	s := New(testProducts(), nil)

	if got := s.Search("MACBOOK"); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("name match failed: %+v", got)
	}
	if got := s.Search("flagship"); len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("description match failed: %+v", got)
	}
	if got := s.Search("phones"); len(got) != 2 {
		t.Fatalf("category match failed: %+v", got)
	}
	if got := s.Search("zzz-nothing"); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestSearchBlankQueryMeansNoFilter(t *testing.T) {
	s := New(testProducts(), nil)
	for _, q := range []string{"", "   ", "\t"} {
		if got := s.Search(q); len(got) != 4 {
			t.Fatalf("query %q: expected full catalog, got %d", q, len(got))
		}
	}
}

func TestSortDoesNotMutateCatalog(t *testing.T) {
	s := New(testProducts(), nil)
	sorted := s.SortBy(SortPriceAsc)
	if sorted[0].ID != 4 || sorted[3].ID != 1 {
		t.Fatalf("price-low sort wrong: %+v", sorted)
	}
	if got := s.Products(); got[0].ID != 1 {
		t.Fatalf("catalog order mutated by sort: %+v", got)
	}
}

func TestSortCriteria(t *testing.T) {
	products := testProducts()
	cases := []struct {
		criterion SortCriterion
		firstID   int
	}{
		{SortPriceAsc, 4},
		{SortPriceDesc, 1},
		{SortRating, 2},
		{SortName, 3}, // "Galaxy S24" sorts first lexicographically
		{SortCriterion("bogus"), 1},
	}
	for _, tc := range cases {
		got := Sort(products, tc.criterion)
		if got[0].ID != tc.firstID {
			t.Fatalf("criterion %q: expected first id %d, got %+v", tc.criterion, tc.firstID, got[0])
		}
	}
}

func TestPaginate(t *testing.T) {
	products := testProducts()

	page1 := Paginate(products, 3, 1)
	if len(page1) != 3 || page1[0].ID != 1 {
		t.Fatalf("unexpected page 1: %+v", page1)
	}
	page2 := Paginate(products, 3, 2)
	if len(page2) != 1 || page2[0].ID != 4 {
		t.Fatalf("unexpected page 2: %+v", page2)
	}
	if got := Paginate(products, 3, 3); len(got) != 0 {
		t.Fatalf("page past the end should be empty, got %+v", got)
	}
}

func TestGetByID(t *testing.T) {
	s := New(testProducts(), nil)
	p, err := s.GetByID(2)
	if err != nil || p.Name != "iPhone 15 Pro" {
		t.Fatalf("unexpected result: %+v err=%v", p, err)
	}
	if _, err := s.GetByID(99); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadOverrideReplacesCatalogWholesale(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	override := []domain.Product{{ID: 42, Name: "Persisted", PriceCents: 100, Category: domain.CategoryAccessories}}
	if err := storage.WriteJSON(ctx, st, storage.KeyProducts, override); err != nil {
		t.Fatalf("write override: %v", err)
	}

	s := New(testProducts(), nil)
	if err := s.LoadOverride(ctx, st); err != nil {
		t.Fatalf("load override: %v", err)
	}
	if got := s.Products(); len(got) != 1 || got[0].ID != 42 {
		t.Fatalf("override not applied: %+v", got)
	}
}

func TestLoadOverrideAbsentKeepsSeed(t *testing.T) {
	s := New(testProducts(), nil)
	if err := s.LoadOverride(context.Background(), memory.New()); err != nil {
		t.Fatalf("load override: %v", err)
	}
	if s.Len() != 4 {
		t.Fatalf("seed catalog lost: %d", s.Len())
	}
}
