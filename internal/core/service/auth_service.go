package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/wishshop/wish-backend/internal/api/metrics"
	"github.com/wishshop/wish-backend/internal/core/domain"
	"github.com/wishshop/wish-backend/internal/core/ports"
)

// AuthService implements signup and login. Tokens are stateless HS256 JWTs
// whose payload carries only the user identity: {"user": {"id": "<id>"}}.
// Passwords are stored as bcrypt hashes, never verbatim.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	cartSize  int
	log       zerolog.Logger
}

// NewAuthService builds an AuthService. A tokenTTL of zero disables the
// expiry claim entirely: issued tokens stay valid for the lifetime of the
// signing secret. cartSize controls how many zeroed slots a fresh cart gets.
func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, cartSize int, log zerolog.Logger) *AuthService {
	if cartSize <= 0 {
		cartSize = domain.DefaultCartSize
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, cartSize: cartSize, log: log}
}

// Signup registers a new user with an all-zero cart and returns a token for
// the assigned identity. Fails with domain.ErrUserExists when the email is
// already registered.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (string, *domain.User, error) {
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrEmailNotFound) {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Cart:         domain.NewCart(s.cartSize),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.issueToken(created.ID)
	if err != nil {
		return "", nil, err
	}

	metrics.SignupsTotal.Inc()
	s.log.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user registered")

	return token, created, nil
}

// Login authenticates by email and password. An unknown email fails with
// domain.ErrEmailNotFound, a mismatched password with domain.ErrWrongPassword;
// the two are distinguished deliberately to match the public contract.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("unknown_email").Inc()
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("wrong_password").Inc()
		return "", nil, domain.ErrWrongPassword
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("user_id", user.ID).Msg("user logged in")

	return token, user, nil
}

func (s *AuthService) issueToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user": map[string]any{"id": userID},
	}
	if s.tokenTTL > 0 {
		claims["exp"] = time.Now().Add(s.tokenTTL).Unix()
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
