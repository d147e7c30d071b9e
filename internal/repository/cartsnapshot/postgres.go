// Package cartsnapshot stores serialized cart records keyed by session, the
// durable counterpart of the client's local storage: carts survive restarts,
// malformed rows are the cart store's problem to discard.
package cartsnapshot

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fashionstore/internal/cart"
	"fashionstore/internal/domain"
)

type postgresStorage struct {
	pool *pgxpool.Pool
}

// NewPostgres returns a cart.Storage backed by the cart_snapshots table.
func NewPostgres(pool *pgxpool.Pool) cart.Storage {
	return &postgresStorage{pool: pool}
}

func (s *postgresStorage) Load(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.pool.QueryRow(ctx, `SELECT data FROM cart_snapshots WHERE key = $1`, key).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *postgresStorage) Save(ctx context.Context, key string, data []byte) error {
	const q = `
INSERT INTO cart_snapshots (key, data, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()
`
	_, err := s.pool.Exec(ctx, q, key, data)
	return err
}
