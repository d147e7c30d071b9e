package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"fashionstore/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

func NewPostgres(pool *pgxpool.Pool, log zerolog.Logger) Repository {
	return &postgresRepo{pool: pool, log: log.With().Str("repo", "user").Logger()}
}

func (r *postgresRepo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	const q = `
INSERT INTO users (email, password_hash, name, is_admin)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at
`
	err := r.pool.QueryRow(ctx, q, u.Email, u.PasswordHash, u.Name, u.IsAdmin).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.log.Error().Err(err).Str("email", u.Email).Msg("create user")
		return nil, err
	}
	return &u, nil
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `
SELECT id, email, password_hash, name, is_admin, created_at
FROM users
WHERE email = $1
`
	var u domain.User
	err := r.pool.QueryRow(ctx, q, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.log.Error().Err(err).Str("email", email).Msg("get user by email")
		return nil, err
	}
	return &u, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	const q = `
SELECT id, email, password_hash, name, is_admin, created_at
FROM users
WHERE id = $1
`
	var u domain.User
	err := r.pool.QueryRow(ctx, q, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.log.Error().Err(err).Int64("id", id).Msg("get user by id")
		return nil, err
	}
	return &u, nil
}
