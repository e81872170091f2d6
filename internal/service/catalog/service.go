package catalog

import (
	"context"
	"fmt"
	"strings"

	"agrimart/internal/domain"
	productrepo "agrimart/internal/repository/product"
)

// Service owns the admin-partitioned product catalog. Every mutating
// operation takes the caller explicitly and enforces ownership here,
// not in the UI.
type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	PriceCents  int64  `json:"priceCents"`
	Quantity    *int   `json:"quantity"`
	Rental      bool   `json:"rental"`
	Image       string `json:"image"`
}

type UpdateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	PriceCents  *int64  `json:"priceCents"`
	Quantity    *int    `json:"quantity"`
	Rental      *bool   `json:"rental"`
	Image       *string `json:"image"`
}

func (s *Service) Create(ctx context.Context, caller domain.User, in CreateInput) (*domain.Product, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name required", domain.ErrValidation)
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: description required", domain.ErrValidation)
	}
	if !domain.ValidCategory(in.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, in.Category)
	}
	if in.PriceCents <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", domain.ErrValidation)
	}
	if in.Rental && in.Category != domain.CategoryMachinery {
		return nil, fmt.Errorf("%w: rental applies to machinery only", domain.ErrValidation)
	}
	quantity := 0
	if !in.Rental {
		if in.Quantity == nil {
			return nil, fmt.Errorf("%w: quantity required for non-rental products", domain.ErrValidation)
		}
		if *in.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity must not be negative", domain.ErrValidation)
		}
		quantity = *in.Quantity
	}
	image := strings.TrimSpace(in.Image)
	if image == "" {
		image = domain.PlaceholderImage
	}

	return s.repo.Create(ctx, domain.Product{
		OwnerID:     caller.ID,
		Name:        name,
		Description: description,
		Category:    in.Category,
		PriceCents:  in.PriceCents,
		Quantity:    quantity,
		Rental:      in.Rental,
		Image:       image,
	})
}

func (s *Service) Update(ctx context.Context, caller domain.User, id string, in UpdateInput) (*domain.Product, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", domain.ErrValidation)
	}
	if in.Category != nil && !domain.ValidCategory(*in.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, *in.Category)
	}
	if in.PriceCents != nil && *in.PriceCents <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", domain.ErrValidation)
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", domain.ErrValidation)
	}
	return s.repo.Update(ctx, caller.ID, id, productrepo.Patch{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		PriceCents:  in.PriceCents,
		Quantity:    in.Quantity,
		Rental:      in.Rental,
		Image:       in.Image,
	})
}

func (s *Service) Delete(ctx context.Context, caller domain.User, id string) error {
	if !caller.IsAdmin() {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, caller.ID, id)
}

// ListMine returns the caller's slice of the catalog.
func (s *Service) ListMine(ctx context.Context, caller domain.User) ([]domain.Product, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListByOwner(ctx, caller.ID)
}

// Browse lists a category across all owners, filtered and sorted for
// the shopper-facing pages.
func (s *Service) Browse(ctx context.Context, category string, criteria Criteria) ([]domain.Product, error) {
	if !domain.ValidCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, category)
	}
	products, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return ApplyFilter(products, criteria), nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}
