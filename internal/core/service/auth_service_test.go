package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkpress/blog-backend/internal/core/domain"
	"github.com/inkpress/blog-backend/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by ID
	writes int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("user_%d", len(r.users)+1)
	r.users[copy.ID] = cloneUser(copy)
	r.writes++
	return copy, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u.Sanitized(), nil
}

func (r *stubUserRepo) FindByIDWithPassword(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	r.writes++
	return nil
}

func newTestAuthService(repo *stubUserRepo) *AuthService {
	hasher := NewPasswordHasher(bcrypt.MinCost)
	tokens := NewTokenService("secret", time.Hour)
	return NewAuthService(repo, hasher, tokens, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	user, token, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:            "A",
		Email:           "A@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash != "" {
		t.Fatalf("returned user carries a credential digest")
	}
	if user.Email != "a@x.com" {
		t.Fatalf("email not normalized: %q", user.Email)
	}

	stored := repo.users[user.ID]
	if stored.PasswordHash == "secret1" {
		t.Fatalf("password stored as plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")) != nil {
		t.Fatalf("stored digest does not match the password")
	}

	subject, err := NewTokenService("secret", time.Hour).Verify(token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if subject != user.ID {
		t.Fatalf("token subject %q does not match user %q", subject, user.ID)
	}
}

func TestAuthService_Register_PasswordMismatch(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:            "A",
		Email:           "a@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret2",
	})
	if !errors.Is(err, domain.ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
	if repo.writes != 0 {
		t.Fatalf("expected no repository writes, got %d", repo.writes)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	input := ports.RegisterInput{Name: "A", Email: "a@x.com", Password: "secret1", ConfirmPassword: "secret1"}
	if _, _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	input.Email = "A@X.COM" // uniqueness is case-insensitive
	if _, _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	created, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "A", Email: "a@x.com", Password: "secret1", ConfirmPassword: "secret1",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != created.ID {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.PasswordHash != "" {
		t.Fatalf("returned user carries a credential digest")
	}

	subject, err := NewTokenService("secret", time.Hour).Verify(token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if subject != created.ID {
		t.Fatalf("token subject %q does not match registered user %q", subject, created.ID)
	}
}

// Wrong password and unknown email must be indistinguishable to the caller.
func TestAuthService_Login_GenericFailure(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, _, _ = svc.Register(context.Background(), ports.RegisterInput{
		Name: "A", Email: "a@x.com", Password: "secret1", ConfirmPassword: "secret1",
	})

	_, _, wrongPass := svc.Login(context.Background(), "a@x.com", "wrong")
	_, _, noUser := svc.Login(context.Background(), "ghost@x.com", "secret1")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(noUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", noUser)
	}
}

func TestAuthService_UpdatePassword_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	created, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "A", Email: "a@x.com", Password: "oldpass1", ConfirmPassword: "oldpass1",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.UpdatePassword(context.Background(), ports.UpdatePasswordInput{
		UserID:          created.ID,
		Password:        "oldpass1",
		NewPassword:     "newpass1",
		ConfirmPassword: "newpass1",
	})
	if err != nil {
		t.Fatalf("UpdatePassword returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a fresh token")
	}
	if user.PasswordHash != "" {
		t.Fatalf("returned user carries a credential digest")
	}

	if _, _, err := svc.Login(context.Background(), "a@x.com", "oldpass1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("old password still accepted after change")
	}
	if _, _, err := svc.Login(context.Background(), "a@x.com", "newpass1"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
}

func TestAuthService_UpdatePassword_WrongCurrent(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	created, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "A", Email: "a@x.com", Password: "oldpass1", ConfirmPassword: "oldpass1",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, err = svc.UpdatePassword(context.Background(), ports.UpdatePasswordInput{
		UserID:          created.ID,
		Password:        "wrong",
		NewPassword:     "newpass1",
		ConfirmPassword: "newpass1",
	})
	if !errors.Is(err, domain.ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}

	// Digest untouched: the old password still logs in.
	if _, _, err := svc.Login(context.Background(), "a@x.com", "oldpass1"); err != nil {
		t.Fatalf("old password rejected after failed change: %v", err)
	}
}

func TestAuthService_UpdatePassword_Mismatch(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, _, err := svc.UpdatePassword(context.Background(), ports.UpdatePasswordInput{
		UserID:          "user_1",
		Password:        "oldpass1",
		NewPassword:     "newpass1",
		ConfirmPassword: "different",
	})
	if !errors.Is(err, domain.ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
}
