package ports

import (
	"context"

	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
)

// SignupInput carries the registration form fields. Role is optional and
// defaults to customer when empty.
type SignupInput struct {
	Name     string
	Email    string
	Mobile   string
	Password string
	Role     string
}

// AuthResult pairs a persisted user with a freshly issued bearer token.
type AuthResult struct {
	User  *domain.User
	Token string
}

// UserService defines the account use-cases.
type UserService interface {
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}

// TokenService issues and verifies signed claims tokens.
type TokenService interface {
	Issue(userID, role string) (string, error)
	Verify(token string) (*domain.Claims, error)
}
