package cart

import (
	"context"
	"errors"

	"agrimart/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Insert(ctx context.Context, shopperID, productID string, quantity int) error {
	const q = `
INSERT INTO cart_items (shopper_id, product_id, quantity)
VALUES ($1, $2, $3)
`
	_, err := r.pool.Exec(ctx, q, shopperID, productID, quantity)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *postgresRepo) UpdateQuantity(ctx context.Context, shopperID, productID string, quantity int) error {
	const q = `
UPDATE cart_items
SET quantity = $3
WHERE shopper_id = $1 AND product_id = $2
`
	cmd, err := r.pool.Exec(ctx, q, shopperID, productID, quantity)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, shopperID, productID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE shopper_id = $1 AND product_id = $2`, shopperID, productID)
	return err
}

func (r *postgresRepo) ListResolved(ctx context.Context, shopperID string) ([]domain.CartLine, error) {
	const q = `
SELECT ci.product_id::text, ci.quantity,
       COALESCE(p.name, ''), COALESCE(p.price_cents, 0), COALESCE(p.image, ''),
       COALESCE(p.rental, false), COALESCE(p.owner_id::text, ''),
       p.id IS NULL AS unavailable
FROM cart_items ci
LEFT JOIN products p ON p.id = ci.product_id
WHERE ci.shopper_id = $1
ORDER BY ci.added_at ASC
`
	rows, err := r.pool.Query(ctx, q, shopperID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.CartLine
	for rows.Next() {
		var line domain.CartLine
		if err := rows.Scan(&line.ProductID, &line.Quantity, &line.Name, &line.PriceCents, &line.Image, &line.Rental, &line.OwnerID, &line.Unavailable); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *postgresRepo) Clear(ctx context.Context, shopperID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE shopper_id = $1`, shopperID)
	return err
}
