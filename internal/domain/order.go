package domain

import "time"

// Order status lifecycle: Pending -> Completed (admin) or
// Pending -> Cancelled (shopper). Both end states are terminal.
const (
	OrderPending   = "Pending"
	OrderCompleted = "Completed"
	OrderCancelled = "Cancelled"
)

// Payment methods accepted at checkout.
const (
	PaymentCashOnDelivery = "cod"
	PaymentOnline         = "online"
)

type Order struct {
	ID               string      `json:"id"`
	ShopperID        string      `json:"shopperId"`
	AdminID          string      `json:"adminId"`
	RecipientName    string      `json:"recipientName"`
	RecipientMobile  string      `json:"recipientMobile"`
	RecipientAddress string      `json:"recipientAddress"`
	PaymentMethod    string      `json:"paymentMethod"`
	PaymentRef       string      `json:"paymentRef,omitempty"`
	Items            []OrderItem `json:"items"`
	TotalCents       int64       `json:"totalCents"`
	Status           string      `json:"status"`
	PlacedAt         time.Time   `json:"placedAt"`
}

// OrderItem snapshots the cart line at placement time. Later catalog
// edits or deletions never alter it; ProductID is kept for reference
// only and may dangle.
type OrderItem struct {
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
	Rental         bool   `json:"rental"`
}

// Terminal reports whether no further status transition is permitted.
func (o Order) Terminal() bool {
	return o.Status != OrderPending
}
