package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wishshop/wish-backend/internal/core/domain"
	"github.com/wishshop/wish-backend/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService that persists cart activity
// to the audit collection.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Record writes one audited cart mutation.
func (s *activityService) Record(ctx context.Context, in ports.CartActivityInput) error {
	activity := &domain.CartActivity{
		UserID: in.UserID,
		Slot:   in.Slot,
		Action: in.Action,
		At:     in.At,
	}

	if err := s.repo.Insert(ctx, activity); err != nil {
		return fmt.Errorf("record cart activity: %w", err)
	}

	s.log.Debug().
		Str("user_id", in.UserID).
		Str("action", in.Action).
		Int("slot", in.Slot).
		Msg("cart activity recorded")

	return nil
}
