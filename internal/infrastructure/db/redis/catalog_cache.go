package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wishshop/wish-backend/internal/core/domain"
)

const (
	catalogKey = "catalog:all"
	catalogTTL = time.Minute
)

// CatalogCache is a read-through cache for the full product listing,
// backed by Redis. Entries expire after catalogTTL and are invalidated
// eagerly on any catalog write.
type CatalogCache struct {
	client *redis.Client
}

// NewCatalogCache creates a CatalogCache wrapping the given Redis client.
func NewCatalogCache(client *redis.Client) *CatalogCache {
	return &CatalogCache{client: client}
}

// GetProducts returns the cached listing; found is false on a cache miss.
func (c *CatalogCache) GetProducts(ctx context.Context) ([]domain.Product, bool, error) {
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("catalog cache get: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, false, fmt.Errorf("catalog cache decode: %w", err)
	}
	return products, true, nil
}

// SetProducts stores the listing with the cache TTL.
func (c *CatalogCache) SetProducts(ctx context.Context, products []domain.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("catalog cache encode: %w", err)
	}
	return c.client.Set(ctx, catalogKey, raw, catalogTTL).Err()
}

// Invalidate drops the cached listing.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, catalogKey).Err()
}
