package domain

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// Order is created once at checkout and never updated afterward. Lines are a
// copy of the cart at checkout time.
type Order struct {
	ID              string      `json:"id"`
	UserID          int         `json:"userId"`
	Lines           []CartLine  `json:"items"`
	TotalCents      int64       `json:"totalCents"`
	Status          OrderStatus `json:"status"`
	Date            string      `json:"date"`
	ShippingAddress string      `json:"shippingAddress"`
}
