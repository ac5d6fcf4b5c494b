package ports

import (
	"context"
	"time"

	"github.com/wishshop/wish-backend/internal/core/domain"
)

// CartActivityInput is the DTO handed from the cart engine to the activity
// dispatcher.
type CartActivityInput struct {
	UserID string
	Slot   int
	Action string
	At     time.Time
}

// ActivityService records cart activity in the audit trail.
type ActivityService interface {
	Record(ctx context.Context, input CartActivityInput) error
}

// ActivityRepository persists audited cart mutations.
type ActivityRepository interface {
	Insert(ctx context.Context, activity *domain.CartActivity) error
}
