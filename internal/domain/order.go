package domain

import "time"

type Order struct {
	ID              int64       `json:"id"`
	UserID          int64       `json:"userId"`
	TotalCents      int64       `json:"totalCents"`
	Status          string      `json:"status"`
	ShippingAddress string      `json:"shippingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	CreatedAt       time.Time   `json:"createdAt"`
	Items           []OrderItem `json:"items,omitempty"`
}

type OrderItem struct {
	ID         int64 `json:"id"`
	OrderID    int64 `json:"orderId"`
	ProductID  int64 `json:"productId"`
	Quantity   int   `json:"quantity"`
	PriceCents int64 `json:"priceCents"`
}

const (
	OrderStatusPending = "pending"
	OrderStatusShipped = "shipped"
)
