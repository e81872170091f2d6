package seed

import (
	"context"
	"errors"
	"fmt"

	"agrimart/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type productSeed struct {
	Name        string
	Description string
	Category    string
	PriceCents  int64
	Quantity    int
	Rental      bool
	Rating      float64
	Image       string
}

// Apply inserts basic seed data for manual testing. It is idempotent
// via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	adminID, err := ensureUser(ctx, pool, "admin@agrimart.test", "Demo Admin", "Agrimart1", domain.RoleAdmin)
	if err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}
	if _, err := ensureUser(ctx, pool, "shopper@agrimart.test", "Demo Shopper", "Agrimart1", domain.RoleUser); err != nil {
		return fmt.Errorf("ensure shopper: %w", err)
	}

	products := []productSeed{
		{
			Name:        "Heirloom Tomato Seeds",
			Description: "Open-pollinated tomato seeds, 50 per packet",
			Category:    "seeds-organic",
			PriceCents:  24900,
			Quantity:    120,
			Rating:      4.6,
		},
		{
			Name:        "Vermicompost 5kg",
			Description: "Earthworm compost for vegetable beds",
			Category:    "fertilizers-organic",
			PriceCents:  39900,
			Quantity:    60,
			Rating:      4.3,
		},
		{
			Name:        "Mini Power Tiller",
			Description: "Walk-behind tiller, 5.5 HP, per-day rental",
			Category:    domain.CategoryMachinery,
			PriceCents:  120000,
			Rental:      true,
			Rating:      4.8,
		},
		{
			Name:        "Alphonso Mango Sapling",
			Description: "Grafted sapling, fruits in 3-4 years",
			Category:    "trees-fruit",
			PriceCents:  54900,
			Quantity:    25,
			Rating:      4.1,
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, adminID, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}

	return nil
}

func ensureUser(ctx context.Context, pool *pgxpool.Pool, email, name, password, role string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	const q = `
INSERT INTO users (email, password_hash, name, role)
VALUES ($1, $2, $3, $4)
ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, role = EXCLUDED.role
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, email, string(hashed), name, role).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, ownerID string, p productSeed) error {
	// Products have no natural key, so match on (owner, name) to stay
	// idempotent across reruns.
	const find = `SELECT id::text FROM products WHERE owner_id = $1 AND name = $2`
	var id string
	err := pool.QueryRow(ctx, find, ownerID, p.Name).Scan(&id)
	if err == nil {
		const update = `
UPDATE products
SET description = $2, category = $3, price_cents = $4, quantity = $5, rental = $6, rating = $7, image = NULLIF($8, '')
WHERE id = $1
`
		_, err = pool.Exec(ctx, update, id, p.Description, p.Category, p.PriceCents, p.Quantity, p.Rental, p.Rating, p.Image)
		return err
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	const insert = `
INSERT INTO products (owner_id, name, description, category, price_cents, quantity, rental, rating, image)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''))
`
	_, err = pool.Exec(ctx, insert, ownerID, p.Name, p.Description, p.Category, p.PriceCents, p.Quantity, p.Rental, p.Rating, p.Image)
	return err
}
