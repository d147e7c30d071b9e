package order

import (
	"context"
	"errors"

	"fashionstore/internal/domain"
	orderrepo "fashionstore/internal/repository/order"
)

// Service records placed orders. Totals arrive from the client as-is; this
// side does not re-validate them.
type Service struct {
	repo repo
}

type repo interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
}

func New(repo orderrepo.Repository) *Service {
	return &Service{repo: repo}
}

type ItemInput struct {
	ProductID  int64
	Quantity   int
	PriceCents int64
}

type CreateInput struct {
	UserID          int64
	TotalCents      int64
	ShippingAddress string
	PaymentMethod   string
	Items           []ItemInput
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Order, error) {
	if len(in.Items) == 0 {
		return nil, errors.New("items required")
	}
	items := make([]domain.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, errors.New("item quantity must be positive")
		}
		items = append(items, domain.OrderItem{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			PriceCents: item.PriceCents,
		})
	}
	return s.repo.Create(ctx, domain.Order{
		UserID:          in.UserID,
		TotalCents:      in.TotalCents,
		Status:          domain.OrderStatusPending,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
		Items:           items,
	})
}

// List returns all orders, newest first, for the admin dashboard.
func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}
