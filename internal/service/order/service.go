package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agrimart/internal/domain"
	"agrimart/internal/payment"
	orderrepo "agrimart/internal/repository/order"
	"github.com/google/uuid"
)

// Service converts carts into orders and drives the order lifecycle.
// Placement is transactional: the order rows, the stock decrement and
// the cart clear commit together or not at all.
type Service struct {
	repo    orderRepo
	cart    cartReader
	gateway payment.Gateway
	now     func() time.Time
}

type orderRepo interface {
	Place(ctx context.Context, shopperID string, orders []domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByShopper(ctx context.Context, shopperID string) ([]domain.Order, error)
	ListByAdmin(ctx context.Context, adminID string) ([]domain.Order, error)
	SetStatus(ctx context.Context, id, from, to string) error
	Delete(ctx context.Context, id, status string) error
	StatsByAdmin(ctx context.Context, adminID string) (orderrepo.Stats, error)
}

type cartReader interface {
	ListResolved(ctx context.Context, shopperID string) ([]domain.CartLine, error)
}

func New(repo orderrepo.Repository, cart cartReader, gateway payment.Gateway) *Service {
	return &Service{repo: repo, cart: cart, gateway: gateway, now: time.Now}
}

// Details carries the shopper-supplied shipping fields. PaymentMethod
// defaults to cash on delivery.
type Details struct {
	Name          string `json:"name"`
	Mobile        string `json:"mobile"`
	Address       string `json:"address"`
	PaymentMethod string `json:"paymentMethod"`
}

// Place builds one order per owning admin from the shopper's cart. A
// cart spanning two admins produces two orders rather than billing
// everything to the first line's admin.
func (s *Service) Place(ctx context.Context, shopper domain.User, details Details) ([]domain.Order, error) {
	return s.place(ctx, shopper, details, "")
}

// PlaceOnline charges the cart total through the payment gateway and
// places the order with the returned transaction reference.
func (s *Service) PlaceOnline(ctx context.Context, shopper domain.User, details Details) ([]domain.Order, error) {
	details.PaymentMethod = domain.PaymentOnline
	lines, err := s.cart.ListResolved(ctx, shopper.ID)
	if err != nil {
		return nil, err
	}
	var total int64
	for _, line := range lines {
		if !line.Unavailable {
			total += line.PriceCents * int64(line.Quantity)
		}
	}
	if total == 0 {
		return nil, domain.ErrEmptyCart
	}
	ref, err := s.gateway.Charge(ctx, total)
	if err != nil {
		return nil, fmt.Errorf("charge %d: %w", total, err)
	}
	return s.place(ctx, shopper, details, ref)
}

func (s *Service) place(ctx context.Context, shopper domain.User, details Details, paymentRef string) ([]domain.Order, error) {
	name := strings.TrimSpace(details.Name)
	mobile := strings.TrimSpace(details.Mobile)
	address := strings.TrimSpace(details.Address)
	if name == "" || mobile == "" || address == "" {
		return nil, domain.ErrMissingDetails
	}
	method := details.PaymentMethod
	if method == "" {
		method = domain.PaymentCashOnDelivery
	}
	if method != domain.PaymentCashOnDelivery && method != domain.PaymentOnline {
		return nil, fmt.Errorf("%w: unknown payment method %q", domain.ErrValidation, method)
	}

	lines, err := s.cart.ListResolved(ctx, shopper.ID)
	if err != nil {
		return nil, err
	}

	// One order per owning admin, admins in first-appearance order.
	byAdmin := make(map[string]*domain.Order)
	var admins []string
	for _, line := range lines {
		if line.Unavailable {
			continue
		}
		o, ok := byAdmin[line.OwnerID]
		if !ok {
			o = &domain.Order{
				ID:               uuid.NewString(),
				ShopperID:        shopper.ID,
				AdminID:          line.OwnerID,
				RecipientName:    name,
				RecipientMobile:  mobile,
				RecipientAddress: address,
				PaymentMethod:    method,
				PaymentRef:       paymentRef,
				Status:           domain.OrderPending,
				PlacedAt:         s.now().UTC(),
			}
			byAdmin[line.OwnerID] = o
			admins = append(admins, line.OwnerID)
		}
		o.Items = append(o.Items, domain.OrderItem{
			ProductID:      line.ProductID,
			Name:           line.Name,
			UnitPriceCents: line.PriceCents,
			Quantity:       line.Quantity,
			Rental:         line.Rental,
		})
		o.TotalCents += line.PriceCents * int64(line.Quantity)
	}
	if len(admins) == 0 {
		return nil, domain.ErrEmptyCart
	}

	orders := make([]domain.Order, 0, len(admins))
	for _, adminID := range admins {
		orders = append(orders, *byAdmin[adminID])
	}
	if err := s.repo.Place(ctx, shopper.ID, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListForShopper returns the shopper's orders, most recent first.
func (s *Service) ListForShopper(ctx context.Context, shopper domain.User) ([]domain.Order, error) {
	return s.repo.ListByShopper(ctx, shopper.ID)
}

// ListForAdmin returns the orders directed at the calling admin.
func (s *Service) ListForAdmin(ctx context.Context, caller domain.User) ([]domain.Order, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListByAdmin(ctx, caller.ID)
}

// MarkCompleted moves a pending order to Completed. Only the admin the
// order is directed at may complete it; terminal orders stay put.
func (s *Service) MarkCompleted(ctx context.Context, caller domain.User, orderID string) error {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if !caller.IsAdmin() || o.AdminID != caller.ID {
		return domain.ErrForbidden
	}
	if o.Terminal() {
		return domain.ErrInvalidTransition
	}
	return s.repo.SetStatus(ctx, orderID, domain.OrderPending, domain.OrderCompleted)
}

// Cancel deletes a pending order. Only the owning shopper may cancel,
// and only before the admin completes it.
func (s *Service) Cancel(ctx context.Context, shopper domain.User, orderID string) error {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if o.ShopperID != shopper.ID {
		return domain.ErrForbidden
	}
	if o.Terminal() {
		return domain.ErrInvalidTransition
	}
	return s.repo.Delete(ctx, orderID, domain.OrderPending)
}

// Stats summarizes the calling admin's order book.
func (s *Service) Stats(ctx context.Context, caller domain.User) (orderrepo.Stats, error) {
	if !caller.IsAdmin() {
		return orderrepo.Stats{}, domain.ErrForbidden
	}
	return s.repo.StatsByAdmin(ctx, caller.ID)
}
