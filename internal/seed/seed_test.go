package seed

import (
	"context"
	"testing"

	"techstore/internal/domain"
	"techstore/internal/storage"
	"techstore/internal/storage/memory"
)

func TestCatalogIsWellFormed(t *testing.T) {
	catalog := Catalog()
	if len(catalog) != 12 {
		t.Fatalf("expected 12 products, got %d", len(catalog))
	}
	seen := map[int]bool{}
	for _, p := range catalog {
		if seen[p.ID] {
			t.Fatalf("duplicate product id %d", p.ID)
		}
		seen[p.ID] = true
		if p.Name == "" || p.PriceCents <= 0 {
			t.Fatalf("malformed product: %+v", p)
		}
		if !p.Category.Valid() || p.Category == domain.CategoryAll {
			t.Fatalf("product %d has invalid category %q", p.ID, p.Category)
		}
		if len(p.Features) == 0 || len(p.Specs) == 0 {
			t.Fatalf("product %d missing features or specs", p.ID)
		}
	}
}

func TestDemoOrderTotalMatchesLines(t *testing.T) {
	orders := Orders()
	if len(orders) != 1 {
		t.Fatalf("expected 1 demo order, got %d", len(orders))
	}
	var sum int64
	for _, line := range orders[0].Lines {
		sum += line.LineTotalCents()
	}
	if sum != orders[0].TotalCents {
		t.Fatalf("order total %d does not match lines %d", orders[0].TotalCents, sum)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := memory.New()

	if err := Apply(ctx, st); err != nil {
		t.Fatalf("apply: %v", err)
	}
	var products []domain.Product
	if err := storage.ReadJSON(ctx, st, storage.KeyProducts, &products); err != nil {
		t.Fatalf("products not seeded: %v", err)
	}
	if len(products) != 12 {
		t.Fatalf("expected 12 seeded products, got %d", len(products))
	}

	// A later run must not clobber live state.
	if err := storage.WriteJSON(ctx, st, storage.KeyProducts, products[:3]); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if err := Apply(ctx, st); err != nil {
		t.Fatalf("reapply: %v", err)
	}
	if err := storage.ReadJSON(ctx, st, storage.KeyProducts, &products); err != nil {
		t.Fatalf("read after reapply: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("reapply clobbered existing state: %d products", len(products))
	}
}
