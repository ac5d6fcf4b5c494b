package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wishshop/wish-backend/internal/core/domain"
	"github.com/wishshop/wish-backend/internal/core/ports"
)

// ActivityRepository persists audited cart mutations to the cart_events
// collection.
type ActivityRepository struct {
	db *mongo.Database
}

func NewActivityRepository(db *mongo.Database) ports.ActivityRepository {
	return &ActivityRepository{db: db}
}

// Insert appends one cart activity document to the audit trail.
func (r *ActivityRepository) Insert(ctx context.Context, activity *domain.CartActivity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"user_id":      activity.UserID,
		"action":       activity.Action,
		"at":           activity.At.UTC(),
		"processed_at": time.Now().UTC(),
	}
	if activity.Slot >= 0 {
		doc["slot"] = activity.Slot
	}

	_, err := r.db.Collection("cart_events").InsertOne(ctx, doc)
	return err
}
