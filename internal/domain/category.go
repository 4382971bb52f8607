package domain

import "fmt"

// Category is the closed set of product categories. CategoryAll is a filter
// sentinel, never stored on a product.
type Category string

const (
	CategoryAll         Category = "all"
	CategoryElectronics Category = "electronics"
	CategoryComputers   Category = "computers"
	CategoryPhones      Category = "phones"
	CategoryAccessories Category = "accessories"
)

// ParseCategory maps a raw string onto the category enum. An empty string is
// treated as the "all" sentinel so callers can pass query params through.
func ParseCategory(raw string) (Category, error) {
	switch Category(raw) {
	case "":
		return CategoryAll, nil
	case CategoryAll, CategoryElectronics, CategoryComputers, CategoryPhones, CategoryAccessories:
		return Category(raw), nil
	}
	return "", fmt.Errorf("unknown category %q", raw)
}

// Valid reports whether c names a storable product category.
func (c Category) Valid() bool {
	switch c {
	case CategoryElectronics, CategoryComputers, CategoryPhones, CategoryAccessories:
		return true
	}
	return false
}
