package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/wishshop/wish-backend/internal/api/metrics"
	"github.com/wishshop/wish-backend/internal/core/domain"
	"github.com/wishshop/wish-backend/internal/core/ports"
)

const (
	newCollectionSize = 8
	popularSize       = 4
)

// CatalogCache abstracts the listing cache (Redis). A miss is reported via
// found=false; cache failures are never fatal to a catalog read.
type CatalogCache interface {
	GetProducts(ctx context.Context) (products []domain.Product, found bool, err error)
	SetProducts(ctx context.Context, products []domain.Product) error
	Invalidate(ctx context.Context) error
}

// CatalogService implements product catalog use cases.
type CatalogService struct {
	repo  ports.ProductRepository
	cache CatalogCache
	log   zerolog.Logger
}

func NewCatalogService(repo ports.ProductRepository, cache CatalogCache, log zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, cache: cache, log: log}
}

// AddProduct creates a product with the next sequential id: one past the
// highest existing id, starting at 1 on an empty catalog.
func (s *CatalogService) AddProduct(ctx context.Context, input ports.AddProductInput) (*domain.Product, error) {
	existing, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var id int64 = 1
	if len(existing) > 0 {
		id = existing[len(existing)-1].ID + 1
	}

	product := &domain.Product{
		ID:        id,
		Name:      input.Name,
		Image:     input.Image,
		Category:  input.Category,
		NewPrice:  input.NewPrice,
		OldPrice:  input.OldPrice,
		Date:      time.Now().UTC(),
		Available: true,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	metrics.ProductsCreatedTotal.WithLabelValues(product.Category).Inc()
	s.log.Info().Int64("product_id", product.ID).Str("name", product.Name).Msg("product created")

	return product, nil
}

// RemoveProduct deletes a product by id and returns the removed document.
func (s *CatalogService) RemoveProduct(ctx context.Context, id int64) (*domain.Product, error) {
	removed, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.log.Info().Int64("product_id", id).Msg("product removed")

	return removed, nil
}

// ListProducts returns the full catalog, serving from cache when possible.
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if cached, found, err := s.cache.GetProducts(ctx); err != nil {
		s.log.Warn().Err(err).Msg("catalog cache read failed, falling back to store")
	} else if found {
		metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	} else {
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
	}

	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetProducts(ctx, products); err != nil {
		s.log.Warn().Err(err).Msg("catalog cache write failed")
	}

	return products, nil
}

// NewCollection returns the most recent additions: everything after the
// first product, trimmed to the last newCollectionSize entries.
func (s *CatalogService) NewCollection(ctx context.Context) ([]domain.Product, error) {
	products, err := s.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) <= 1 {
		return []domain.Product{}, nil
	}

	tail := products[1:]
	if len(tail) > newCollectionSize {
		tail = tail[len(tail)-newCollectionSize:]
	}
	return tail, nil
}

// PopularInCategory returns the first popularSize products of a category.
func (s *CatalogService) PopularInCategory(ctx context.Context, category string) ([]domain.Product, error) {
	products, err := s.repo.FindByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	if len(products) > popularSize {
		products = products[:popularSize]
	}
	return products, nil
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}
