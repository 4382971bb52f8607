package importer

import (
	"context"
	"strings"
	"testing"

	"techstore/internal/domain"
)

type stubWriter struct {
	products []domain.Product
	calls    int
}

func (s *stubWriter) Replace(_ context.Context, products []domain.Product) error {
	s.products = products
	s.calls++
	return nil
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := `id,name,description,price_cents,category,image,rating,reviews,in_stock,features,specs
1,Widget Phone,A phone,89999,phones,./phone.jpg,4.5,10,true,Fast chip;Nice camera,Processor=X1;Memory=8GB
2,Widget Mouse,A mouse,9999,accessories,./mouse.jpg,4.8,312,false,Wireless,Sensor=8K DPI`

	writer := &stubWriter{}
	imp := NewCSVImporter(strings.NewReader(csvData), writer)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 2 || len(writer.products) != 2 {
		t.Fatalf("expected 2 products imported, got count=%d saved=%d", count, len(writer.products))
	}

	p := writer.products[0]
	if p.ID != 1 || p.Name != "Widget Phone" || p.PriceCents != 89999 || p.Category != domain.CategoryPhones {
		t.Fatalf("unexpected product data: %+v", p)
	}
	if len(p.Features) != 2 || p.Features[1] != "Nice camera" {
		t.Fatalf("features not parsed: %+v", p.Features)
	}
	if len(p.Specs) != 2 || p.Specs[0].Label != "Processor" || p.Specs[0].Value != "X1" {
		t.Fatalf("specs not parsed: %+v", p.Specs)
	}
	if !p.InStock || writer.products[1].InStock {
		t.Fatalf("in_stock not parsed")
	}
}

func TestCSVImporter_RejectsBadRows(t *testing.T) {
	cases := []struct {
		name string
		csv  string
	}{
		{"bad id", "id,name,price_cents,category\nzero,P,100,phones"},
		{"missing name", "id,name,price_cents,category\n1,,100,phones"},
		{"bad price", "id,name,price_cents,category\n1,P,-5,phones"},
		{"bad category", "id,name,price_cents,category\n1,P,100,groceries"},
		{"all category", "id,name,price_cents,category\n1,P,100,all"},
		{"duplicate id", "id,name,price_cents,category\n1,P,100,phones\n1,Q,200,phones"},
		{"empty file", "id,name,price_cents,category\n"},
	}
	for _, tc := range cases {
		writer := &stubWriter{}
		if _, err := NewCSVImporter(strings.NewReader(tc.csv), writer).Run(context.Background()); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if writer.calls != 0 {
			t.Fatalf("%s: writer called despite invalid input", tc.name)
		}
	}
}
