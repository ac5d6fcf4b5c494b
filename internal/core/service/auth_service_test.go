package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/wishshop/wish-backend/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by id
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Cart = make(domain.Cart, len(u.Cart))
	for k, v := range u.Cart {
		clone.Cart[k] = v
	}
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrEmailNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	created := cloneUser(user)
	created.ID = "user_" + strconv.Itoa(r.nextID)
	r.nextID++
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) IncrementCartItem(_ context.Context, id string, slot int) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Cart[domain.SlotKey(slot)]++
	return nil
}

func (r *stubUserRepo) DecrementCartItem(_ context.Context, id string, slot int) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	if u.Cart[domain.SlotKey(slot)] > 0 {
		u.Cart[domain.SlotKey(slot)]--
	}
	return nil
}

func (r *stubUserRepo) ReplaceCart(_ context.Context, id string, cart domain.Cart) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Cart = cart
	return nil
}

func decodeTokenUserID(t *testing.T, token, secret string) string {
	t.Helper()
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	user, ok := claims["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user claim, got %v", claims)
	}
	id, _ := user["id"].(string)
	return id
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestAuthService_Signup_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", 0, domain.DefaultCartSize, zerolog.Nop())

	token, user, err := svc.Signup(context.Background(), "ann", "a@x.com", "p1")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if user == nil || user.ID == "" {
		t.Fatalf("expected user with identity, got %+v", user)
	}
	if user.PasswordHash == "p1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("p1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if len(user.Cart) != domain.DefaultCartSize {
		t.Fatalf("expected %d cart slots, got %d", domain.DefaultCartSize, len(user.Cart))
	}
	for slot, qty := range user.Cart {
		if qty != 0 {
			t.Fatalf("expected zeroed cart, slot %s = %d", slot, qty)
		}
	}
	if got := decodeTokenUserID(t, token, "secret"); got != user.ID {
		t.Fatalf("token identity %q does not match user %q", got, user.ID)
	}
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", 0, 10, zerolog.Nop())

	if _, _, err := svc.Signup(context.Background(), "ann", "a@x.com", "p1"); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, _, err := svc.Signup(context.Background(), "ann2", "a@x.com", "p2"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("duplicate signup created a record: %d users", len(repo.users))
	}
}

func TestAuthService_Login_RoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", 0, 10, zerolog.Nop())

	signupToken, user, err := svc.Signup(context.Background(), "ann", "a@x.com", "p1")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	loginToken, loginUser, err := svc.Login(context.Background(), "a@x.com", "p1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if loginUser.ID != user.ID {
		t.Fatalf("login resolved a different user: %q vs %q", loginUser.ID, user.ID)
	}
	if decodeTokenUserID(t, signupToken, "secret") != decodeTokenUserID(t, loginToken, "secret") {
		t.Fatalf("signup and login tokens encode different identities")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", 0, 10, zerolog.Nop())

	_, _, _ = svc.Signup(context.Background(), "ann", "a@x.com", "good")
	if _, _, err := svc.Login(context.Background(), "a@x.com", "bad"); err != domain.ErrWrongPassword {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", 0, 10, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "ghost@x.com", "p1"); err != domain.ErrEmailNotFound {
		t.Fatalf("expected ErrEmailNotFound, got %v", err)
	}
}

func TestAuthService_TokenTTL(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour, 10, zerolog.Nop())

	token, _, err := svc.Signup(context.Background(), "ann", "a@x.com", "p1")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("expected exp claim when TTL is set")
	}
}
