package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fashionstore/internal/cache"
	"fashionstore/internal/domain"
	productrepo "fashionstore/internal/repository/product"
)

// Service serves catalog reads through a short-lived cache and handles the
// admin product CRUD.
type Service struct {
	repo  repo
	cache cache.Service
	ttl   time.Duration
}

type repo interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id int64, in productrepo.UpdateInput) (*domain.Product, error)
}

func New(repo productrepo.Repository, c cache.Service, ttl time.Duration) *Service {
	return &Service{repo: repo, cache: c, ttl: ttl}
}

const listCacheKey = "products:list"

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		if v, ok := s.cache.Get(listCacheKey); ok {
			return v.([]domain.Product), nil
		}
	}
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(listCacheKey, products, s.ttl)
	}
	return products, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Product, error) {
	key := fmt.Sprintf("products:%d", id)
	if s.cache != nil {
		if v, ok := s.cache.Get(key); ok {
			return v.(*domain.Product), nil
		}
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(key, p, s.ttl)
	}
	return p, nil
}

// CreateInput carries a full product payload from the admin dashboard.
type CreateInput struct {
	Name        string
	Description string
	PriceCents  int64
	ImageURL    string
	Category    string
	Stock       int
	Size        string
	Color       string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, errors.New("name required")
	}
	if in.PriceCents < 0 {
		return nil, errors.New("price must not be negative")
	}
	if in.Stock < 0 {
		return nil, errors.New("stock must not be negative")
	}
	created, err := s.repo.Create(ctx, domain.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		PriceCents:  in.PriceCents,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		Stock:       in.Stock,
		Size:        in.Size,
		Color:       in.Color,
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(created.ID)
	return created, nil
}

// UpdateInput is a partial update; only name, price, and stock are editable
// from the inventory dashboard.
type UpdateInput struct {
	Name       *string
	PriceCents *int64
	Stock      *int
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*domain.Product, error) {
	if in.PriceCents != nil && *in.PriceCents < 0 {
		return nil, errors.New("price must not be negative")
	}
	if in.Stock != nil && *in.Stock < 0 {
		return nil, errors.New("stock must not be negative")
	}
	updated, err := s.repo.Update(ctx, id, productrepo.UpdateInput{
		Name:       in.Name,
		PriceCents: in.PriceCents,
		Stock:      in.Stock,
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(id)
	return updated, nil
}

func (s *Service) invalidate(id int64) {
	if s.cache == nil {
		return
	}
	s.cache.Delete(listCacheKey)
	s.cache.Delete(fmt.Sprintf("products:%d", id))
}
