package order

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"fashionstore/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

func NewPostgres(pool *pgxpool.Pool, log zerolog.Logger) Repository {
	return &postgresRepo{pool: pool, log: log.With().Str("repo", "order").Logger()}
}

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	const insertOrder = `
INSERT INTO orders (user_id, total_cents, status, shipping_address, payment_method)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at
`
	err = tx.QueryRow(ctx, insertOrder,
		o.UserID, o.TotalCents, o.Status, o.ShippingAddress, o.PaymentMethod,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		r.log.Error().Err(err).Int64("user_id", o.UserID).Msg("insert order")
		return nil, err
	}

	const insertItem = `
INSERT INTO order_items (order_id, product_id, quantity, price_cents)
VALUES ($1, $2, $3, $4)
RETURNING id
`
	for i := range o.Items {
		item := &o.Items[i]
		item.OrderID = o.ID
		if err := tx.QueryRow(ctx, insertItem, o.ID, item.ProductID, item.Quantity, item.PriceCents).Scan(&item.ID); err != nil {
			r.log.Error().Err(err).Int64("order_id", o.ID).Int64("product_id", item.ProductID).Msg("insert order item")
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &o, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Order, error) {
	const q = `
SELECT id, user_id, total_cents, status, shipping_address, payment_method, created_at
FROM orders
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.log.Error().Err(err).Msg("list orders")
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalCents, &o.Status, &o.ShippingAddress, &o.PaymentMethod, &o.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		r.log.Error().Err(err).Msg("list orders rows")
		return nil, err
	}
	return result, nil
}
