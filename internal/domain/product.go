package domain

// SpecEntry is one label/value row of a product spec sheet. Specs are kept as
// an ordered slice so display order survives a marshal round trip.
type SpecEntry struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Product struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	PriceCents  int64       `json:"priceCents"`
	Category    Category    `json:"category"`
	Image       string      `json:"image,omitempty"`
	Rating      float64     `json:"rating"`
	Reviews     int         `json:"reviews"`
	InStock     bool        `json:"inStock"`
	Features    []string    `json:"features,omitempty"`
	Specs       []SpecEntry `json:"specs,omitempty"`
}
