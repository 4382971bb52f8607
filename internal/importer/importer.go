// Package importer loads a product catalog from a CSV export and replaces
// the stored catalog with it.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"techstore/internal/domain"
	"techstore/internal/storage"
)

// CatalogWriter receives the fully parsed catalog. The import is all or
// nothing; the writer is only called once every row validated.
type CatalogWriter interface {
	Replace(ctx context.Context, products []domain.Product) error
}

// StoreWriter writes the catalog into the state store.
type StoreWriter struct {
	store storage.Store
}

func NewStoreWriter(store storage.Store) *StoreWriter {
	return &StoreWriter{store: store}
}

func (w *StoreWriter) Replace(ctx context.Context, products []domain.Product) error {
	return storage.WriteJSON(ctx, w.store, storage.KeyProducts, products)
}

// CSVImporter parses catalog CSV rows into products.
//
// Expected headers: id, name, description, price_cents, category, image,
// rating, reviews, in_stock, features, specs. Features are ; separated;
// specs are ; separated Label=Value pairs.
type CSVImporter struct {
	reader *csv.Reader
	writer CatalogWriter
}

func NewCSVImporter(r io.Reader, writer CatalogWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{reader: csvr, writer: writer}
}

// Run parses all rows, validates them, and replaces the stored catalog.
// Returns the number of imported products.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	var products []domain.Product
	seen := make(map[int]bool)
	line := 1

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read row: %w", err)
		}
		line++

		p, err := parseRow(record, index)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", line, err)
		}
		if seen[p.ID] {
			return 0, fmt.Errorf("line %d: duplicate product id %d", line, p.ID)
		}
		seen[p.ID] = true
		products = append(products, p)
	}

	if len(products) == 0 {
		return 0, errors.New("no product rows in file")
	}
	if err := i.writer.Replace(ctx, products); err != nil {
		return 0, fmt.Errorf("replace catalog: %w", err)
	}
	return len(products), nil
}

func parseRow(record []string, index map[string]int) (domain.Product, error) {
	var p domain.Product

	id, err := strconv.Atoi(pick(record, index, "id"))
	if err != nil || id <= 0 {
		return p, fmt.Errorf("invalid id %q", pick(record, index, "id"))
	}
	p.ID = id

	p.Name = pick(record, index, "name")
	if p.Name == "" {
		return p, fmt.Errorf("product %d: name required", id)
	}
	p.Description = pick(record, index, "description")

	cents, err := strconv.ParseInt(pick(record, index, "price_cents"), 10, 64)
	if err != nil || cents <= 0 {
		return p, fmt.Errorf("product %d: invalid price_cents %q", id, pick(record, index, "price_cents"))
	}
	p.PriceCents = cents

	cat := domain.Category(pick(record, index, "category"))
	if !cat.Valid() || cat == domain.CategoryAll {
		return p, fmt.Errorf("product %d: invalid category %q", id, cat)
	}
	p.Category = cat
	p.Image = pick(record, index, "image")

	if raw := pick(record, index, "rating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil || rating < 0 || rating > 5 {
			return p, fmt.Errorf("product %d: invalid rating %q", id, raw)
		}
		p.Rating = rating
	}
	if raw := pick(record, index, "reviews"); raw != "" {
		reviews, err := strconv.Atoi(raw)
		if err != nil || reviews < 0 {
			return p, fmt.Errorf("product %d: invalid reviews %q", id, raw)
		}
		p.Reviews = reviews
	}

	switch strings.ToLower(pick(record, index, "in_stock")) {
	case "", "true", "1", "yes":
		p.InStock = true
	case "false", "0", "no":
		p.InStock = false
	default:
		return p, fmt.Errorf("product %d: invalid in_stock %q", id, pick(record, index, "in_stock"))
	}

	if raw := pick(record, index, "features"); raw != "" {
		for _, f := range strings.Split(raw, ";") {
			if f = strings.TrimSpace(f); f != "" {
				p.Features = append(p.Features, f)
			}
		}
	}

	if raw := pick(record, index, "specs"); raw != "" {
		for _, pair := range strings.Split(raw, ";") {
			pair = strings.TrimSpace(pair)
			if pair == "" {
				continue
			}
			label, value, ok := strings.Cut(pair, "=")
			if !ok {
				return p, fmt.Errorf("product %d: invalid spec %q", id, pair)
			}
			p.Specs = append(p.Specs, domain.SpecEntry{
				Label: strings.TrimSpace(label),
				Value: strings.TrimSpace(value),
			})
		}
	}

	return p, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
