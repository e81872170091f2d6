package order

import (
	"context"
	"errors"
	"io"
	"log"

	"agrimart/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Place(ctx context.Context, shopperID string, orders []domain.Order) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, o := range orders {
		const insertOrder = `
INSERT INTO orders (id, shopper_id, admin_id, recipient_name, recipient_mobile, recipient_address, payment_method, payment_ref, total_cents, status, placed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10, $11)
`
		if _, err := tx.Exec(ctx, insertOrder,
			o.ID, o.ShopperID, o.AdminID, o.RecipientName, o.RecipientMobile, o.RecipientAddress,
			o.PaymentMethod, o.PaymentRef, o.TotalCents, o.Status, o.PlacedAt,
		); err != nil {
			return err
		}

		for _, item := range o.Items {
			const insertItem = `
INSERT INTO order_items (order_id, product_id, name, unit_price_cents, quantity, rental)
VALUES ($1, $2, $3, $4, $5, $6)
`
			if _, err := tx.Exec(ctx, insertItem, o.ID, item.ProductID, item.Name, item.UnitPriceCents, item.Quantity, item.Rental); err != nil {
				return err
			}
			if item.Rental {
				continue
			}
			// Conditional decrement: a concurrent placement that took the
			// last units makes this affect zero rows and aborts the tx.
			cmd, err := tx.Exec(ctx, `
UPDATE products
SET quantity = quantity - $2
WHERE id = $1 AND quantity >= $2
`, item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if cmd.RowsAffected() == 0 {
				r.logger.Printf("order repo: place shopper_id=%s product_id=%s insufficient stock", shopperID, item.ProductID)
				return domain.ErrOutOfStock
			}
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE shopper_id = $1`, shopperID); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	r.logger.Printf("order repo: placed shopper_id=%s orders=%d", shopperID, len(orders))
	return nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
SELECT id::text, shopper_id::text, admin_id::text, recipient_name, recipient_mobile, recipient_address, payment_method, COALESCE(payment_ref, ''), total_cents, status, placed_at
FROM orders
WHERE id = $1
`
	var o domain.Order
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&o.ID, &o.ShopperID, &o.AdminID, &o.RecipientName, &o.RecipientMobile, &o.RecipientAddress,
		&o.PaymentMethod, &o.PaymentRef, &o.TotalCents, &o.Status, &o.PlacedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	items, err := r.itemsFor(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *postgresRepo) ListByShopper(ctx context.Context, shopperID string) ([]domain.Order, error) {
	return r.list(ctx, `shopper_id`, shopperID)
}

func (r *postgresRepo) ListByAdmin(ctx context.Context, adminID string) ([]domain.Order, error) {
	return r.list(ctx, `admin_id`, adminID)
}

func (r *postgresRepo) list(ctx context.Context, column, id string) ([]domain.Order, error) {
	q := `
SELECT id::text, shopper_id::text, admin_id::text, recipient_name, recipient_mobile, recipient_address, payment_method, COALESCE(payment_ref, ''), total_cents, status, placed_at
FROM orders
WHERE ` + column + ` = $1
ORDER BY placed_at DESC
`
	rows, err := r.pool.Query(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(
			&o.ID, &o.ShopperID, &o.AdminID, &o.RecipientName, &o.RecipientMobile, &o.RecipientAddress,
			&o.PaymentMethod, &o.PaymentRef, &o.TotalCents, &o.Status, &o.PlacedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		items, err := r.itemsFor(ctx, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Items = items
	}
	return result, nil
}

func (r *postgresRepo) itemsFor(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	const q = `
SELECT COALESCE(product_id::text, ''), name, unit_price_cents, quantity, rental
FROM order_items
WHERE order_id = $1
ORDER BY id
`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.UnitPriceCents, &item.Quantity, &item.Rental); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *postgresRepo) SetStatus(ctx context.Context, id, from, to string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE orders SET status = $3 WHERE id = $1 AND status = $2`, id, from, to)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInvalidTransition
	}
	r.logger.Printf("order repo: status id=%s %s -> %s", id, from, to)
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id, status string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1 AND status = $2`, id, status)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInvalidTransition
	}
	r.logger.Printf("order repo: deleted id=%s", id)
	return nil
}

func (r *postgresRepo) StatsByAdmin(ctx context.Context, adminID string) (Stats, error) {
	const q = `
SELECT COUNT(*),
       COUNT(*) FILTER (WHERE status = 'Completed'),
       COUNT(*) FILTER (WHERE status = 'Pending'),
       COALESCE(SUM(total_cents) FILTER (WHERE status = 'Completed'), 0)
FROM orders
WHERE admin_id = $1
`
	var s Stats
	err := r.pool.QueryRow(ctx, q, adminID).Scan(&s.TotalOrders, &s.CompletedOrders, &s.PendingOrders, &s.EarningsCents)
	return s, err
}
