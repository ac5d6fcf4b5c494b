package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")

// CategoryWomen backs the curated "popular in women" listing.
const CategoryWomen = "women"

// Product is a catalog entry. The numeric ID is assigned sequentially at
// creation time and is the identifier clients submit as a cart slot index.
type Product struct {
	ID        int64     `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Image     string    `json:"image" bson:"image"`
	Category  string    `json:"category" bson:"category"`
	NewPrice  float64   `json:"new_price" bson:"new_price"`
	OldPrice  float64   `json:"old_price" bson:"old_price"`
	Date      time.Time `json:"date" bson:"date"`
	Available bool      `json:"available" bson:"available"`
}
