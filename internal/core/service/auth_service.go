package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkpress/blog-backend/internal/core/domain"
	"github.com/inkpress/blog-backend/internal/core/ports"
)

// AuthService implements the three credential flows: register, login and
// password change. It owns no state of its own — users live in the
// repository, token validity lives inside the tokens.
type AuthService struct {
	repo   ports.UserRepository
	hasher *PasswordHasher
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher *PasswordHasher, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, logger: logger}
}

// Register creates an account and returns it together with a freshly issued
// token. The plaintext password never reaches the repository; email
// uniqueness is enforced by the store and surfaces as domain.ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, string, error) {
	if input.Password != input.ConfirmPassword {
		return nil, "", domain.ErrPasswordMismatch
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        normalizeEmail(input.Email),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user registered")

	return created.Sanitized(), token, nil
}

// Login verifies credentials and issues a token. An unknown email and a wrong
// password are indistinguishable to the caller: both return
// domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Compare(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	return token, user.Sanitized(), nil
}

// UpdatePassword replaces the stored digest after re-verifying the current
// password, then issues a fresh token. Previously issued tokens stay valid
// until their natural expiry; there is no revocation list.
func (s *AuthService) UpdatePassword(ctx context.Context, input ports.UpdatePasswordInput) (string, *domain.User, error) {
	if input.NewPassword != input.ConfirmPassword {
		return "", nil, domain.ErrPasswordMismatch
	}

	user, err := s.repo.FindByIDWithPassword(ctx, input.UserID)
	if err != nil {
		return "", nil, err
	}

	if !s.hasher.Compare(input.Password, user.PasswordHash) {
		return "", nil, domain.ErrWrongPassword
	}

	hash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return "", nil, err
	}

	if err := s.repo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("password updated")

	return token, user.Sanitized(), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
