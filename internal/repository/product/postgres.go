package product

import (
	"context"
	"errors"
	"io"
	"log"

	"agrimart/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `id::text, owner_id::text, name, COALESCE(description, ''), category, price_cents, quantity, rental, rating, COALESCE(image, ''), created_at`

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

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (owner_id, name, description, category, price_cents, quantity, rental, rating, image)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, NULLIF($9, ''))
RETURNING ` + productColumns
	row := r.pool.QueryRow(ctx, q, p.OwnerID, p.Name, p.Description, p.Category, p.PriceCents, p.Quantity, p.Rental, p.Rating, p.Image)
	out, err := scanProduct(row)
	if err != nil {
		r.logger.Printf("product repo: create owner_id=%s error=%v", p.OwnerID, err)
		return nil, err
	}
	r.logger.Printf("product repo: created id=%s owner_id=%s category=%s", out.ID, out.OwnerID, out.Category)
	return out, nil
}

func (r *postgresRepo) Update(ctx context.Context, ownerID, id string, patch Patch) (*domain.Product, error) {
	const q = `
UPDATE products
SET name = COALESCE($3, name),
    description = COALESCE($4, description),
    category = COALESCE($5, category),
    price_cents = COALESCE($6, price_cents),
    quantity = COALESCE($7, quantity),
    rental = COALESCE($8, rental),
    image = COALESCE($9, image)
WHERE id = $1 AND owner_id = $2
RETURNING ` + productColumns
	row := r.pool.QueryRow(ctx, q, id, ownerID, patch.Name, patch.Description, patch.Category, patch.PriceCents, patch.Quantity, patch.Rental, patch.Image)
	out, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.missOrForbidden(ctx, id)
		}
		r.logger.Printf("product repo: update id=%s owner_id=%s error=%v", id, ownerID, err)
		return nil, err
	}
	return out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, ownerID, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		r.logger.Printf("product repo: delete id=%s owner_id=%s error=%v", id, ownerID, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return r.missOrForbidden(ctx, id)
	}
	r.logger.Printf("product repo: deleted id=%s owner_id=%s", id, ownerID)
	return nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	out, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (r *postgresRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE owner_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, q, ownerID)
}

func (r *postgresRepo) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE category = $1 ORDER BY created_at ASC`
	return r.list(ctx, q, category)
}

func (r *postgresRepo) list(ctx context.Context, q string, arg any) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, q, arg)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

// missOrForbidden distinguishes a vanished product from one owned by
// somebody else after a zero-row write.
func (r *postgresRepo) missOrForbidden(ctx context.Context, id string) error {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return domain.ErrForbidden
	}
	return domain.ErrNotFound
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	if err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.Category, &p.PriceCents, &p.Quantity, &p.Rental, &p.Rating, &p.Image, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
