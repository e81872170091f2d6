package domain

import "time"

// CartItem is one stored cart row. At most one row exists per
// (shopper, product) pair.
type CartItem struct {
	ShopperID string    `json:"-"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}

// CartLine is a cart row resolved against the catalog at read time. The
// product reference is weak: when the product has been deleted since the
// row was written, Unavailable is set and the price fields are zero.
type CartLine struct {
	ProductID   string `json:"productId"`
	Quantity    int    `json:"quantity"`
	Name        string `json:"name,omitempty"`
	PriceCents  int64  `json:"priceCents"`
	Image       string `json:"image,omitempty"`
	Rental      bool   `json:"rental"`
	OwnerID     string `json:"-"`
	Unavailable bool   `json:"unavailable"`
}

// Cart is the resolved view handed to callers. TotalCents covers only
// lines whose product still resolves; unavailable lines are surfaced,
// not silently dropped.
type Cart struct {
	ShopperID  string     `json:"-"`
	Lines      []CartLine `json:"lines"`
	TotalCents int64      `json:"totalCents"`
}
