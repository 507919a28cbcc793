package ports

import (
	"context"

	"github.com/inkpress/blog-backend/internal/core/domain"
)

// RegisterInput carries the signup fields after transport-level validation.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// UpdatePasswordInput carries a password change for an already authenticated user.
type UpdatePasswordInput struct {
	UserID          string
	Password        string
	NewPassword     string
	ConfirmPassword string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	UpdatePassword(ctx context.Context, input UpdatePasswordInput) (string, *domain.User, error)
}
