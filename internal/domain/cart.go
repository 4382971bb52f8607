package domain

// CartLine is a product snapshot plus a quantity. The snapshot is embedded so
// the persisted line carries the product fields it was added with, even if the
// catalog is later replaced.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotalCents is the line's contribution to the cart subtotal.
func (l CartLine) LineTotalCents() int64 {
	return l.PriceCents * int64(l.Quantity)
}
