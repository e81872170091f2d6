package wishlist

import (
	"context"

	"agrimart/internal/domain"
)

type Repository interface {
	// Toggle flips membership and reports whether the product was added.
	Toggle(ctx context.Context, shopperID, productID string) (bool, error)
	Exists(ctx context.Context, shopperID, productID string) (bool, error)
	// ListResolved returns the wishlisted products that still exist;
	// dangling ids are omitted.
	ListResolved(ctx context.Context, shopperID string) ([]domain.Product, error)
}
