package product

import (
	"context"

	"agrimart/internal/domain"
)

// Patch carries optional field updates; nil fields are left untouched.
type Patch struct {
	Name        *string
	Description *string
	Category    *string
	PriceCents  *int64
	Quantity    *int
	Rental      *bool
	Image       *string
}

type Repository interface {
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, ownerID, id string, patch Patch) (*domain.Product, error)
	Delete(ctx context.Context, ownerID, id string) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)
}
