package domain

import (
	"errors"
	"time"
)

// DefaultCartSize is the number of catalog slots pre-allocated in a new cart.
const DefaultCartSize = 300

var ErrUserExists = errors.New("existing user found with same email address")
var ErrUserNotFound = errors.New("user not found")
var ErrEmailNotFound = errors.New("email not registered")
var ErrWrongPassword = errors.New("wrong password")

// User is a registered shopper. The email is the natural login key and is
// unique across the users collection.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Cart         Cart      `json:"cart_data"`
	CreatedAt    time.Time `json:"created_at"`
}
