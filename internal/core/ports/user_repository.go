package ports

import (
	"context"

	"github.com/inkpress/blog-backend/internal/core/domain"
)

// UserRepository defines the persistence interface for user accounts.
//
// Reads exclude the credential digest unless the method says otherwise:
// FindByEmail (login) and FindByIDWithPassword (password change) load the
// digest explicitly, FindByID (token resolution) never does. Email uniqueness
// is enforced by the store itself, not by callers.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByIDWithPassword(ctx context.Context, id string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
