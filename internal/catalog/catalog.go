// Package catalog holds the product set and answers the browse queries:
// category filter, keyword search, sort and pagination. All queries are pure
// over the currently loaded catalog.
package catalog

import (
	"context"
	"errors"
	"io"
	"log"
	"sort"
	"strings"
	"sync"

	"techstore/internal/domain"
	"techstore/internal/storage"
)

// SortCriterion names one of the supported product orderings. The values
// match the sort selector the storefront exposes.
type SortCriterion string

const (
	SortPriceAsc  SortCriterion = "price-low"
	SortPriceDesc SortCriterion = "price-high"
	SortRating    SortCriterion = "rating"
	SortName      SortCriterion = "name"
)

// Store owns the product list. Products are seeded at construction and only
// ever replaced wholesale via LoadOverride; queries never mutate it.
type Store struct {
	mu       sync.RWMutex
	products []domain.Product
	logger   *log.Logger
}

func New(products []domain.Product, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	cp := make([]domain.Product, len(products))
	copy(cp, products)
	return &Store{products: cp, logger: logger}
}

// LoadOverride replaces the catalog with the persisted products snapshot when
// one exists. An absent key keeps the seeded catalog; an empty persisted list
// is ignored for the same reason.
func (s *Store) LoadOverride(ctx context.Context, st storage.Store) error {
	var saved []domain.Product
	if err := storage.ReadJSON(ctx, st, storage.KeyProducts, &saved); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	if len(saved) == 0 {
		return nil
	}
	s.mu.Lock()
	s.products = saved
	s.mu.Unlock()
	s.logger.Printf("catalog: loaded %d products from storage", len(saved))
	return nil
}

// Products returns a copy of the full catalog in catalog order.
func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := make([]domain.Product, len(s.products))
	copy(cp, s.products)
	return cp
}

// Len reports the catalog size.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// FilterByCategory returns the products in the given category, or the full
// catalog for the CategoryAll sentinel.
func (s *Store) FilterByCategory(cat domain.Category) []domain.Product {
	if cat == domain.CategoryAll {
		return s.Products()
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Product, 0)
	for _, p := range s.products {
		if p.Category == cat {
			result = append(result, p)
		}
	}
	return result
}

// Search matches the query case-insensitively against name, description and
// category. An empty or whitespace-only query means "no search" and returns
// the full catalog. Results keep catalog order; there is no relevance rank.
func (s *Store) Search(query string) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.Products()
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Product, 0)
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(string(p.Category), q) {
			result = append(result, p)
		}
	}
	return result
}

// GetByID looks a product up by id.
func (s *Store) GetByID(id int) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

// SortBy returns the catalog sorted by the criterion. The catalog itself is
// left in catalog order.
func (s *Store) SortBy(criterion SortCriterion) []domain.Product {
	return Sort(s.Products(), criterion)
}

// Sort orders a copy of products by the criterion. An unknown criterion
// returns the input order unchanged.
func Sort(products []domain.Product, criterion SortCriterion) []domain.Product {
	sorted := make([]domain.Product, len(products))
	copy(sorted, products)
	switch criterion {
	case SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].PriceCents < sorted[j].PriceCents })
	case SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].PriceCents > sorted[j].PriceCents })
	case SortRating:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	case SortName:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	}
	return sorted
}

// Paginate slices out page `page` (1-based) of `pageSize` items. Pages past
// the end are an empty result. page < 1 is a caller error; HTTP handlers
// clamp before calling.
func Paginate(products []domain.Product, pageSize, page int) []domain.Product {
	start := (page - 1) * pageSize
	if start >= len(products) {
		return []domain.Product{}
	}
	end := start + pageSize
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}
