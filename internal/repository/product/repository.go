package product

import (
	"context"

	"fashionstore/internal/domain"
)

// UpdateInput carries a partial product update; nil fields are left as-is.
type UpdateInput struct {
	Name       *string
	PriceCents *int64
	Stock      *int
}

type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id int64, in UpdateInput) (*domain.Product, error)
}
