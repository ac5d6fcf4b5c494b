package ports

import (
	"context"

	"github.com/wishshop/wish-backend/internal/core/domain"
)

// ProductRepository defines persistence operations for catalog products.
type ProductRepository interface {
	// FindAll returns the full catalog ordered by ascending product id.
	FindAll(ctx context.Context) ([]domain.Product, error)
	// FindByCategory returns products of one category ordered by ascending id.
	FindByCategory(ctx context.Context, category string) ([]domain.Product, error)
	Create(ctx context.Context, p *domain.Product) error
	// DeleteByID removes a product and returns the removed document.
	DeleteByID(ctx context.Context, id int64) (*domain.Product, error)
}
