package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"fashionstore/internal/domain"
	productrepo "fashionstore/internal/repository/product"
)

type stubRepo struct {
	products   []domain.Product
	listCalls  int
	listErr    error
	getProduct *domain.Product
	getErr     error
	created    *domain.Product
	createErr  error
	updated    *domain.Product
	updateErr  error
	lastUpdate productrepo.UpdateInput
}

func (s *stubRepo) List(_ context.Context) ([]domain.Product, error) {
	s.listCalls++
	return s.products, s.listErr
}

func (s *stubRepo) GetByID(_ context.Context, _ int64) (*domain.Product, error) {
	return s.getProduct, s.getErr
}

func (s *stubRepo) Create(_ context.Context, _ domain.Product) (*domain.Product, error) {
	return s.created, s.createErr
}

func (s *stubRepo) Update(_ context.Context, _ int64, in productrepo.UpdateInput) (*domain.Product, error) {
	s.lastUpdate = in
	return s.updated, s.updateErr
}

type stubCache struct {
	entries map[string]interface{}
	deleted []string
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string]interface{})}
}

func (c *stubCache) Get(key string) (interface{}, bool) {
	v, ok := c.entries[key]
	return v, ok
}

func (c *stubCache) Set(key string, value interface{}, _ time.Duration) {
	c.entries[key] = value
}

func (c *stubCache) Delete(key string) {
	c.deleted = append(c.deleted, key)
	delete(c.entries, key)
}

func (c *stubCache) Flush() {
	c.entries = make(map[string]interface{})
}

func TestListCachesResult(t *testing.T) {
	repo := &stubRepo{products: []domain.Product{{ID: 1, Name: "Tee"}}}
	svc := &Service{repo: repo, cache: newStubCache(), ttl: time.Minute}

	for i := 0; i < 3; i++ {
		got, err := svc.List(context.Background())
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(got) != 1 || got[0].ID != 1 {
			t.Fatalf("unexpected products: %+v", got)
		}
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected 1 repo call, got %d", repo.listCalls)
	}
}

func TestListWithoutCache(t *testing.T) {
	repo := &stubRepo{products: []domain.Product{{ID: 1}}}
	svc := &Service{repo: repo}
	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.listCalls != 2 {
		t.Fatalf("expected repo hit per call without cache, got %d", repo.listCalls)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}

	if _, err := svc.Create(context.Background(), CreateInput{Name: "  "}); err == nil || err.Error() != "name required" {
		t.Fatalf("expected name error, got %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{Name: "Tee", PriceCents: -1}); err == nil || err.Error() != "price must not be negative" {
		t.Fatalf("expected price error, got %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{Name: "Tee", Stock: -1}); err == nil || err.Error() != "stock must not be negative" {
		t.Fatalf("expected stock error, got %v", err)
	}
}

func TestCreateInvalidatesCache(t *testing.T) {
	c := newStubCache()
	c.entries[listCacheKey] = []domain.Product{}
	repo := &stubRepo{created: &domain.Product{ID: 9, Name: "Tee"}}
	svc := &Service{repo: repo, cache: c, ttl: time.Minute}

	created, err := svc.Create(context.Background(), CreateInput{Name: "Tee", PriceCents: 1999})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 9 {
		t.Fatalf("unexpected product: %+v", created)
	}
	if _, ok := c.entries[listCacheKey]; ok {
		t.Fatalf("list cache not invalidated")
	}
}

func TestUpdatePassesPartialFields(t *testing.T) {
	name := "Renamed"
	price := int64(2599)
	repo := &stubRepo{updated: &domain.Product{ID: 3, Name: name, PriceCents: price}}
	svc := &Service{repo: repo}

	got, err := svc.Update(context.Background(), 3, UpdateInput{Name: &name, PriceCents: &price})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != name {
		t.Fatalf("unexpected product: %+v", got)
	}
	if repo.lastUpdate.Name == nil || *repo.lastUpdate.Name != name {
		t.Fatalf("name not forwarded")
	}
	if repo.lastUpdate.Stock != nil {
		t.Fatalf("stock should stay nil")
	}
}

func TestUpdateRepoError(t *testing.T) {
	repo := &stubRepo{updateErr: errors.New("boom")}
	svc := &Service{repo: repo}
	if _, err := svc.Update(context.Background(), 3, UpdateInput{}); err == nil || err.Error() != "boom" {
		t.Fatalf("expected repo error, got %v", err)
	}
}

func TestGetNotFound(t *testing.T) {
	repo := &stubRepo{getErr: domain.ErrNotFound}
	svc := &Service{repo: repo}
	if _, err := svc.Get(context.Background(), 42); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
