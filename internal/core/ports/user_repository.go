package ports

import (
	"context"

	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindAdmin returns the admin account if one exists, domain.ErrUserNotFound otherwise.
	FindAdmin(ctx context.Context) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
