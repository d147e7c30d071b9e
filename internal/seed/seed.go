package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type productSeed struct {
	Name        string
	Description string
	PriceCents  int64
	ImageURL    string
	Category    string
	Stock       int
	Size        string
	Color       string
}

// Apply inserts sample catalog data and a default admin account for manual
// testing. It is idempotent.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			Name:        "Classic White T-Shirt",
			Description: "100% Cotton premium t-shirt",
			PriceCents:  2499,
			ImageURL:    "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400",
			Category:    "T-Shirts",
			Stock:       50,
			Size:        "M",
			Color:       "White",
		},
		{
			Name:        "Denim Jacket",
			Description: "Vintage washed denim jacket",
			PriceCents:  8999,
			ImageURL:    "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=400",
			Category:    "Jackets",
			Stock:       25,
			Size:        "L",
			Color:       "Blue",
		},
		{
			Name:        "Black Jeans",
			Description: "Slim fit black jeans",
			PriceCents:  6999,
			ImageURL:    "https://images.unsplash.com/photo-1542272604-787c3835535d?w=400",
			Category:    "Jeans",
			Stock:       30,
			Size:        "32",
			Color:       "Black",
		},
		{
			Name:        "Summer Dress",
			Description: "Floral print summer dress",
			PriceCents:  5999,
			ImageURL:    "https://images.unsplash.com/photo-1567095761054-7a02e69e5c43?w=400",
			Category:    "Dresses",
			Stock:       20,
			Size:        "S",
			Color:       "Multicolor",
		},
		{
			Name:        "Running Shoes",
			Description: "Lightweight running shoes",
			PriceCents:  11999,
			ImageURL:    "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400",
			Category:    "Shoes",
			Stock:       40,
			Size:        "10",
			Color:       "Gray",
		},
		{
			Name:        "Wool Sweater",
			Description: "100% Merino wool sweater",
			PriceCents:  7999,
			ImageURL:    "https://images.unsplash.com/photo-1576566588028-4147f3842f27?w=400",
			Category:    "Sweaters",
			Stock:       15,
			Size:        "XL",
			Color:       "Navy",
		},
		{
			Name:        "Leather Handbag",
			Description: "Genuine leather handbag",
			PriceCents:  14999,
			ImageURL:    "https://images.unsplash.com/photo-1584917865442-de89df76afd3?w=400",
			Category:    "Accessories",
			Stock:       10,
			Size:        "One Size",
			Color:       "Brown",
		},
		{
			Name:        "Baseball Cap",
			Description: "Adjustable cotton cap",
			PriceCents:  2999,
			ImageURL:    "https://images.unsplash.com/photo-1588850561407-ed78c282e89b?w=400",
			Category:    "Accessories",
			Stock:       100,
			Size:        "Adjustable",
			Color:       "Black",
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %q: %w", p.Name, err)
		}
	}

	if err := ensureAdmin(ctx, pool, "admin@fashionstore.test", "admin123"); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}

	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	// Products have no natural key, so match on name to stay idempotent.
	const q = `
INSERT INTO products (name, description, price_cents, image_url, category, stock, size, color)
SELECT $1, $2, $3, $4, $5, $6, $7, $8
WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $1)
`
	_, err := pool.Exec(ctx, q, p.Name, p.Description, p.PriceCents, p.ImageURL, p.Category, p.Stock, p.Size, p.Color)
	return err
}

func ensureAdmin(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO users (email, password_hash, name, is_admin)
VALUES ($1, $2, 'Store Admin', TRUE)
ON CONFLICT (email) DO NOTHING
`
	_, err = pool.Exec(ctx, q, email, string(hash))
	return err
}
