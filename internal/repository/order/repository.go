package order

import (
	"context"

	"agrimart/internal/domain"
)

// Stats aggregates an admin's order book for the dashboard.
type Stats struct {
	TotalOrders     int   `json:"totalOrders"`
	CompletedOrders int   `json:"completedOrders"`
	PendingOrders   int   `json:"pendingOrders"`
	EarningsCents   int64 `json:"earningsCents"`
}

type Repository interface {
	// Place persists the given orders, decrements stock for their
	// non-rental items and clears the shopper's cart, all in one
	// transaction. Insufficient stock aborts the whole placement with
	// domain.ErrOutOfStock; nothing is written and the cart is intact.
	Place(ctx context.Context, shopperID string, orders []domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByShopper(ctx context.Context, shopperID string) ([]domain.Order, error)
	ListByAdmin(ctx context.Context, adminID string) ([]domain.Order, error)
	// SetStatus moves an order from one status to another; zero rows
	// affected reports domain.ErrInvalidTransition.
	SetStatus(ctx context.Context, id, from, to string) error
	// Delete removes an order still in the given status.
	Delete(ctx context.Context, id, status string) error
	StatsByAdmin(ctx context.Context, adminID string) (Stats, error)
}
