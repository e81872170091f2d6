package cart

import (
	"context"
	"errors"
	"fmt"

	"agrimart/internal/domain"
	cartrepo "agrimart/internal/repository/cart"
)

// Service keeps per-shopper carts. State is strictly partitioned by
// shopper; every operation takes the caller explicitly.
type Service struct {
	repo     cartRepo
	products productGetter
}

type cartRepo interface {
	Insert(ctx context.Context, shopperID, productID string, quantity int) error
	UpdateQuantity(ctx context.Context, shopperID, productID string, quantity int) error
	Delete(ctx context.Context, shopperID, productID string) error
	ListResolved(ctx context.Context, shopperID string) ([]domain.CartLine, error)
	Clear(ctx context.Context, shopperID string) error
}

type productGetter interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(repo cartrepo.Repository, products productGetter) *Service {
	return &Service{repo: repo, products: products}
}

// Add puts a product into the shopper's cart with quantity 1. Adding an
// already-present product is rejected, not merged.
func (s *Service) Add(ctx context.Context, shopper domain.User, productID string) error {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if !product.Orderable() {
		return domain.ErrOutOfStock
	}
	if err := s.repo.Insert(ctx, shopper.ID, productID, 1); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.ErrAlreadyInCart
		}
		return err
	}
	return nil
}

// Remove drops a cart line. Removing an absent line is a no-op.
func (s *Service) Remove(ctx context.Context, shopper domain.User, productID string) error {
	return s.repo.Delete(ctx, shopper.ID, productID)
}

// SetQuantity adjusts a line. Quantities below 1 are rejected; Remove
// is the way to delete a line.
func (s *Service) SetQuantity(ctx context.Context, shopper domain.User, productID string, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
	}
	return s.repo.UpdateQuantity(ctx, shopper.ID, productID, quantity)
}

// View resolves the cart against the catalog. Lines whose product was
// deleted stay visible, flagged unavailable and excluded from the total.
func (s *Service) View(ctx context.Context, shopper domain.User) (*domain.Cart, error) {
	lines, err := s.repo.ListResolved(ctx, shopper.ID)
	if err != nil {
		return nil, err
	}
	cart := &domain.Cart{ShopperID: shopper.ID, Lines: lines}
	for _, line := range lines {
		if line.Unavailable {
			continue
		}
		cart.TotalCents += line.PriceCents * int64(line.Quantity)
	}
	return cart, nil
}

func (s *Service) Clear(ctx context.Context, shopper domain.User) error {
	return s.repo.Clear(ctx, shopper.ID)
}
