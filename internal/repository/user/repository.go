package user

import (
	"context"

	"fashionstore/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
