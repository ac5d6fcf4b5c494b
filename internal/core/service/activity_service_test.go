package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/wishshop/wish-backend/internal/core/domain"
	"github.com/wishshop/wish-backend/internal/core/ports"
)

type stubActivityRepo struct {
	inserted  []*domain.CartActivity
	insertErr error
}

func (r *stubActivityRepo) Insert(_ context.Context, a *domain.CartActivity) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, a)
	return nil
}

func TestActivityService_Record(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, zerolog.Nop())

	in := ports.CartActivityInput{
		UserID: "user_1",
		Slot:   5,
		Action: domain.CartActionAdd,
		At:     time.Now().UTC(),
	}
	if err := svc.Record(context.Background(), in); err != nil {
		t.Fatalf("Record returned error: %v", err)
	}

	if len(repo.inserted) != 1 {
		t.Fatalf("expected one insert, got %d", len(repo.inserted))
	}
	got := repo.inserted[0]
	if got.UserID != "user_1" || got.Slot != 5 || got.Action != domain.CartActionAdd {
		t.Fatalf("unexpected activity: %+v", got)
	}
}

func TestActivityService_Record_InsertError(t *testing.T) {
	repo := &stubActivityRepo{insertErr: errors.New("collection unavailable")}
	svc := NewActivityService(repo, zerolog.Nop())

	err := svc.Record(context.Background(), ports.CartActivityInput{UserID: "user_1"})
	if err == nil {
		t.Fatalf("expected error to propagate")
	}
}
