package catalog

import (
	"context"
	"errors"
	"testing"

	"agrimart/internal/domain"
	productrepo "agrimart/internal/repository/product"
)

type stubProductRepo struct {
	created      *domain.Product
	createErr    error
	lastCreate   domain.Product
	updated      *domain.Product
	updateErr    error
	lastOwnerID  string
	lastID       string
	lastPatch    productrepo.Patch
	deleteErr    error
	byID         *domain.Product
	byIDErr      error
	byOwner      []domain.Product
	byCategory   []domain.Product
	byCatErr     error
	lastCategory string
}

func (s *stubProductRepo) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.lastCreate = p
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.created != nil {
		return s.created, nil
	}
	out := p
	out.ID = "generated"
	return &out, nil
}

func (s *stubProductRepo) Update(_ context.Context, ownerID, id string, patch productrepo.Patch) (*domain.Product, error) {
	s.lastOwnerID = ownerID
	s.lastID = id
	s.lastPatch = patch
	return s.updated, s.updateErr
}

func (s *stubProductRepo) Delete(_ context.Context, ownerID, id string) error {
	s.lastOwnerID = ownerID
	s.lastID = id
	return s.deleteErr
}

func (s *stubProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	s.lastID = id
	return s.byID, s.byIDErr
}

func (s *stubProductRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.Product, error) {
	s.lastOwnerID = ownerID
	return s.byOwner, nil
}

func (s *stubProductRepo) ListByCategory(_ context.Context, category string) ([]domain.Product, error) {
	s.lastCategory = category
	return s.byCategory, s.byCatErr
}

func admin() domain.User {
	return domain.User{ID: "admin-1", Role: domain.RoleAdmin}
}

func shopper() domain.User {
	return domain.User{ID: "shopper-1", Role: domain.RoleUser}
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func validCreate() CreateInput {
	return CreateInput{
		Name:        "Tomato Seeds",
		Description: "Open pollinated",
		Category:    "vegetables",
		PriceCents:  500,
		Quantity:    intPtr(10),
	}
}

func TestCreateRequiresAdmin(t *testing.T) {
	svc := New(&stubProductRepo{})
	_, err := svc.Create(context.Background(), shopper(), validCreate())
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := New(&stubProductRepo{})
	cases := []struct {
		name string
		in   CreateInput
	}{
		{"blank name", func() CreateInput { in := validCreate(); in.Name = "  "; return in }()},
		{"blank description", func() CreateInput { in := validCreate(); in.Description = ""; return in }()},
		{"unknown category", func() CreateInput { in := validCreate(); in.Category = "spaceships"; return in }()},
		{"zero price", func() CreateInput { in := validCreate(); in.PriceCents = 0; return in }()},
		{"negative price", func() CreateInput { in := validCreate(); in.PriceCents = -5; return in }()},
		{"rental outside machinery", func() CreateInput { in := validCreate(); in.Rental = true; return in }()},
		{"missing quantity", func() CreateInput { in := validCreate(); in.Quantity = nil; return in }()},
		{"negative quantity", func() CreateInput { in := validCreate(); in.Quantity = intPtr(-1); return in }()},
	}
	for _, tc := range cases {
		_, err := svc.Create(context.Background(), admin(), tc.in)
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestCreateDefaultsImage(t *testing.T) {
	repo := &stubProductRepo{}
	svc := New(repo)
	_, err := svc.Create(context.Background(), admin(), validCreate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastCreate.Image != domain.PlaceholderImage {
		t.Fatalf("expected placeholder image, got %q", repo.lastCreate.Image)
	}
	if repo.lastCreate.OwnerID != "admin-1" {
		t.Fatalf("expected owner from caller, got %q", repo.lastCreate.OwnerID)
	}
}

func TestCreateRentalMachineryWithoutQuantity(t *testing.T) {
	repo := &stubProductRepo{}
	svc := New(repo)
	in := validCreate()
	in.Category = domain.CategoryMachinery
	in.Rental = true
	in.Quantity = nil
	_, err := svc.Create(context.Background(), admin(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastCreate.Quantity != 0 || !repo.lastCreate.Rental {
		t.Fatalf("unexpected stored product %+v", repo.lastCreate)
	}
}

func TestUpdateValidatesSetFields(t *testing.T) {
	svc := New(&stubProductRepo{})
	cases := []struct {
		name string
		in   UpdateInput
	}{
		{"blank name", UpdateInput{Name: strPtr("   ")}},
		{"unknown category", UpdateInput{Category: strPtr("nope")}},
		{"zero price", UpdateInput{PriceCents: int64Ptr(0)}},
		{"negative quantity", UpdateInput{Quantity: intPtr(-3)}},
	}
	for _, tc := range cases {
		_, err := svc.Update(context.Background(), admin(), "p1", tc.in)
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestUpdatePassesPatchScopedToCaller(t *testing.T) {
	repo := &stubProductRepo{updated: &domain.Product{ID: "p1", Name: "New"}}
	svc := New(repo)
	got, err := svc.Update(context.Background(), admin(), "p1", UpdateInput{Name: strPtr("New")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "New" {
		t.Fatalf("unexpected product %+v", got)
	}
	if repo.lastOwnerID != "admin-1" || repo.lastID != "p1" || repo.lastPatch.Name == nil {
		t.Fatalf("patch not scoped to caller: owner=%q id=%q", repo.lastOwnerID, repo.lastID)
	}
}

func TestUpdateForbiddenForShopper(t *testing.T) {
	svc := New(&stubProductRepo{})
	_, err := svc.Update(context.Background(), shopper(), "p1", UpdateInput{Name: strPtr("New")})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestDeleteForbiddenForShopper(t *testing.T) {
	svc := New(&stubProductRepo{})
	if err := svc.Delete(context.Background(), shopper(), "p1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestListMineScopedToCaller(t *testing.T) {
	repo := &stubProductRepo{byOwner: []domain.Product{{ID: "p1"}}}
	svc := New(repo)
	got, err := svc.ListMine(context.Background(), admin())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || repo.lastOwnerID != "admin-1" {
		t.Fatalf("unexpected listing: %+v owner=%q", got, repo.lastOwnerID)
	}
}

func TestBrowseRejectsUnknownCategory(t *testing.T) {
	svc := New(&stubProductRepo{})
	_, err := svc.Browse(context.Background(), "spaceships", Criteria{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBrowseFiltersAcrossOwners(t *testing.T) {
	repo := &stubProductRepo{byCategory: []domain.Product{
		{ID: "cheap", OwnerID: "admin-1", Name: "Basic Hoe", PriceCents: 100},
		{ID: "costly", OwnerID: "admin-2", Name: "Steel Hoe", PriceCents: 900},
	}}
	svc := New(repo)
	got, err := svc.Browse(context.Background(), "machinery", Criteria{PriceMaxCents: int64Ptr(500)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastCategory != "machinery" {
		t.Fatalf("unexpected category %q", repo.lastCategory)
	}
	if len(got) != 1 || got[0].ID != "cheap" {
		t.Fatalf("unexpected result %+v", got)
	}
}
