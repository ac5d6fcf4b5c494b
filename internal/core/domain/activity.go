package domain

import "time"

// Cart actions recorded in the activity audit trail.
const (
	CartActionAdd    = "add"
	CartActionRemove = "remove"
	CartActionClear  = "clear"
)

// CartActivity is one audited cart mutation.
type CartActivity struct {
	UserID string
	Slot   int
	Action string
	At     time.Time
}
