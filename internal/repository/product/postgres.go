package product

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"fashionstore/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

func NewPostgres(pool *pgxpool.Pool, log zerolog.Logger) Repository {
	return &postgresRepo{pool: pool, log: log.With().Str("repo", "product").Logger()}
}

const productColumns = `id, name, COALESCE(description, ''), price_cents, image_url, category, stock, size, color, created_at`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.ImageURL, &p.Category, &p.Stock, &p.Size, &p.Color, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		r.log.Error().Err(err).Msg("list products")
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
		r.log.Error().Err(err).Msg("list products rows")
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.log.Error().Err(err).Int64("id", id).Msg("get product")
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, description, price_cents, image_url, category, stock, size, color)
VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8)
RETURNING id, created_at
`
	err := r.pool.QueryRow(ctx, q,
		p.Name, p.Description, p.PriceCents, p.ImageURL, p.Category, p.Stock, p.Size, p.Color,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		r.log.Error().Err(err).Str("name", p.Name).Msg("create product")
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Update(ctx context.Context, id int64, in UpdateInput) (*domain.Product, error) {
	const q = `
UPDATE products
SET name = COALESCE($2, name),
    price_cents = COALESCE($3, price_cents),
    stock = COALESCE($4, stock)
WHERE id = $1
RETURNING ` + productColumns
	row := r.pool.QueryRow(ctx, q, id, in.Name, in.PriceCents, in.Stock)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.log.Error().Err(err).Int64("id", id).Msg("update product")
		return nil, err
	}
	return p, nil
}
