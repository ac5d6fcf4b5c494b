package ports

import (
	"context"

	"github.com/wishshop/wish-backend/internal/core/domain"
)

// UserRepository defines persistence operations for user records. The cart
// mutations are atomic at the store level: concurrent increments on the same
// slot are never lost to a read-modify-write race.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// IncrementCartItem adds 1 to the quantity at slot, creating the slot
	// when it does not exist yet.
	IncrementCartItem(ctx context.Context, id string, slot int) error
	// DecrementCartItem subtracts 1 from the quantity at slot unless it is
	// already zero or absent, in which case the call is a no-op.
	DecrementCartItem(ctx context.Context, id string, slot int) error
	// ReplaceCart overwrites the stored cart wholesale.
	ReplaceCart(ctx context.Context, id string, cart domain.Cart) error
}
