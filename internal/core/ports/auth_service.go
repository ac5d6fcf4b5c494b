package ports

import (
	"context"

	"github.com/wishshop/wish-backend/internal/core/domain"
)

// AuthService implements signup and login, returning a signed identity token
// on success.
type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
