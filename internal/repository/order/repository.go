package order

import (
	"context"

	"fashionstore/internal/domain"
)

type Repository interface {
	// Create inserts the order and its items in one transaction and returns
	// the stored order with ids assigned.
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
}
