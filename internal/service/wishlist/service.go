package wishlist

import (
	"context"

	"agrimart/internal/domain"
	wishlistrepo "agrimart/internal/repository/wishlist"
)

// Service keeps per-shopper wishlists with toggle semantics.
type Service struct {
	repo wishlistRepo
}

type wishlistRepo interface {
	Toggle(ctx context.Context, shopperID, productID string) (bool, error)
	Exists(ctx context.Context, shopperID, productID string) (bool, error)
	ListResolved(ctx context.Context, shopperID string) ([]domain.Product, error)
}

func New(repo wishlistrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Toggle flips membership and reports whether the product is now
// wishlisted. Toggling an already-present product removes it; that is
// not an error.
func (s *Service) Toggle(ctx context.Context, shopper domain.User, productID string) (bool, error) {
	return s.repo.Toggle(ctx, shopper.ID, productID)
}

func (s *Service) IsWishlisted(ctx context.Context, shopper domain.User, productID string) (bool, error) {
	return s.repo.Exists(ctx, shopper.ID, productID)
}

// List resolves the wishlist against the catalog; ids whose product was
// deleted are omitted.
func (s *Service) List(ctx context.Context, shopper domain.User) ([]domain.Product, error) {
	return s.repo.ListResolved(ctx, shopper.ID)
}
