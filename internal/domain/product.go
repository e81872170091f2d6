package domain

import "time"

// PlaceholderImage is used when an admin does not supply product media.
const PlaceholderImage = "https://static.agrimart.local/images/placeholder.png"

type Product struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	PriceCents  int64     `json:"priceCents"`
	Quantity    int       `json:"quantity"`
	Rental      bool      `json:"rental"`
	Rating      float64   `json:"rating"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Orderable reports whether a shopper may add the product to a cart.
// Rental machinery is requested rather than bought and is never blocked
// by zero stock.
func (p Product) Orderable() bool {
	return p.Rental || p.Quantity > 0
}
