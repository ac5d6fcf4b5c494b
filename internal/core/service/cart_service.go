package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/wishshop/wish-backend/internal/api/metrics"
	"github.com/wishshop/wish-backend/internal/core/domain"
	"github.com/wishshop/wish-backend/internal/core/ports"
)

// ActivityRecorder abstracts the async audit dispatcher the cart engine
// publishes mutations to.
type ActivityRecorder interface {
	Enqueue(input ports.CartActivityInput)
}

// CartService is the cart engine. It holds no state of its own: every
// operation reads or writes the user record through the repository, and the
// add/remove mutations are single atomic field increments at the store level,
// so concurrent calls for the same user and slot cannot lose updates.
type CartService struct {
	repo     ports.UserRepository
	activity ActivityRecorder
	log      zerolog.Logger
}

func NewCartService(repo ports.UserRepository, activity ActivityRecorder, log zerolog.Logger) *CartService {
	return &CartService{repo: repo, activity: activity, log: log}
}

// AddItem increments the quantity at slot by one. The slot is created on
// first use; no upper range is enforced.
func (s *CartService) AddItem(ctx context.Context, userID string, slot int) error {
	if err := s.repo.IncrementCartItem(ctx, userID, slot); err != nil {
		return err
	}

	metrics.CartOpsTotal.WithLabelValues(domain.CartActionAdd).Inc()
	s.record(userID, slot, domain.CartActionAdd)
	s.log.Debug().Str("user_id", userID).Int("slot", slot).Msg("item added to cart")
	return nil
}

// RemoveItem decrements the quantity at slot by one, never below zero.
// Removing from an empty slot is an acknowledged no-op.
func (s *CartService) RemoveItem(ctx context.Context, userID string, slot int) error {
	if err := s.repo.DecrementCartItem(ctx, userID, slot); err != nil {
		return err
	}

	metrics.CartOpsTotal.WithLabelValues(domain.CartActionRemove).Inc()
	s.record(userID, slot, domain.CartActionRemove)
	s.log.Debug().Str("user_id", userID).Int("slot", slot).Msg("item removed from cart")
	return nil
}

// GetCart returns the stored cart mapping verbatim.
func (s *CartService) GetCart(ctx context.Context, userID string) (domain.Cart, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Cart, nil
}

// ClearCart zeroes every slot currently present in the cart. This is the one
// read-modify-write in the engine; a concurrent increment may be overwritten,
// which is acceptable for an explicit clear.
func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	user.Cart.Clear()
	if err := s.repo.ReplaceCart(ctx, userID, user.Cart); err != nil {
		return err
	}

	metrics.CartOpsTotal.WithLabelValues(domain.CartActionClear).Inc()
	s.record(userID, -1, domain.CartActionClear)
	s.log.Info().Str("user_id", userID).Msg("cart cleared")
	return nil
}

func (s *CartService) record(userID string, slot int, action string) {
	s.activity.Enqueue(ports.CartActivityInput{
		UserID: userID,
		Slot:   slot,
		Action: action,
		At:     time.Now().UTC(),
	})
}
