package cart

import (
	"context"

	"agrimart/internal/domain"
)

type Repository interface {
	// Insert stores a new cart row; domain.ErrAlreadyExists when the
	// shopper already carted the product.
	Insert(ctx context.Context, shopperID, productID string, quantity int) error
	UpdateQuantity(ctx context.Context, shopperID, productID string, quantity int) error
	// Delete is idempotent: removing an absent row is not an error.
	Delete(ctx context.Context, shopperID, productID string) error
	// ListResolved re-resolves every row against the catalog. Rows whose
	// product no longer exists come back with Unavailable set.
	ListResolved(ctx context.Context, shopperID string) ([]domain.CartLine, error)
	Clear(ctx context.Context, shopperID string) error
}
