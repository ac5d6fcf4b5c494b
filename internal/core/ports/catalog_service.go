package ports

import (
	"context"

	"github.com/wishshop/wish-backend/internal/core/domain"
)

// AddProductInput carries the fields submitted when creating a product.
// The id, date, and availability are assigned by the service.
type AddProductInput struct {
	Name     string
	Image    string
	Category string
	NewPrice float64
	OldPrice float64
}

// CatalogService defines use-case operations for the product catalog.
type CatalogService interface {
	AddProduct(ctx context.Context, input AddProductInput) (*domain.Product, error)
	RemoveProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	// NewCollection returns the newest additions: the catalog minus its
	// first product, trimmed to the last eight.
	NewCollection(ctx context.Context) ([]domain.Product, error)
	// PopularInCategory returns the first four products of a category.
	PopularInCategory(ctx context.Context, category string) ([]domain.Product, error)
}
