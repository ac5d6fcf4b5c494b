package ports

import (
	"context"

	"github.com/wishshop/wish-backend/internal/core/domain"
)

// CartService holds the per-user cart mutation and read logic. Each operation
// is atomic from the caller's point of view and acknowledges without
// returning the new quantity.
type CartService interface {
	AddItem(ctx context.Context, userID string, slot int) error
	RemoveItem(ctx context.Context, userID string, slot int) error
	GetCart(ctx context.Context, userID string) (domain.Cart, error)
	ClearCart(ctx context.Context, userID string) error
}
