package wishlist

import (
	"context"

	"agrimart/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Toggle(ctx context.Context, shopperID, productID string) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM wishlist_items WHERE shopper_id = $1 AND product_id = $2`, shopperID, productID)
	if err != nil {
		return false, err
	}
	if cmd.RowsAffected() > 0 {
		return false, nil
	}
	const q = `
INSERT INTO wishlist_items (shopper_id, product_id)
VALUES ($1, $2)
ON CONFLICT (shopper_id, product_id) DO NOTHING
`
	if _, err := r.pool.Exec(ctx, q, shopperID, productID); err != nil {
		return false, err
	}
	return true, nil
}

func (r *postgresRepo) Exists(ctx context.Context, shopperID, productID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM wishlist_items WHERE shopper_id = $1 AND product_id = $2)`, shopperID, productID).Scan(&exists)
	return exists, err
}

func (r *postgresRepo) ListResolved(ctx context.Context, shopperID string) ([]domain.Product, error) {
	const q = `
SELECT p.id::text, p.owner_id::text, p.name, COALESCE(p.description, ''), p.category, p.price_cents, p.quantity, p.rental, p.rating, COALESCE(p.image, ''), p.created_at
FROM wishlist_items wi
JOIN products p ON p.id = wi.product_id
WHERE wi.shopper_id = $1
ORDER BY wi.added_at ASC
`
	rows, err := r.pool.Query(ctx, q, shopperID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.Category, &p.PriceCents, &p.Quantity, &p.Rental, &p.Rating, &p.Image, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
