package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sweetshop/sweet-shop-api/internal/api/metrics"
	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
	"github.com/sweetshop/sweet-shop-api/internal/core/ports"
)

const minPasswordLength = 6

// TokenRevoker abstracts the revocation store (Redis). Revoking a user
// invalidates every token issued before the given instant.
type TokenRevoker interface {
	Revoke(ctx context.Context, userID string, at time.Time) error
}

// UserService implements signup, login, profile lookup and password change.
type UserService struct {
	repo    ports.UserRepository
	tokens  ports.TokenService
	revoker TokenRevoker
	log     zerolog.Logger
}

func NewUserService(repo ports.UserRepository, tokens ports.TokenService, revoker TokenRevoker, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, tokens: tokens, revoker: revoker, log: log}
}

// Signup registers a new account. The email must be unique and at most one
// admin account may exist; both checks happen at creation time only.
func (s *UserService) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
	if input.Name == "" || input.Email == "" || input.Mobile == "" || input.Password == "" {
		return nil, domain.ErrMissingFields
	}
	if len(input.Password) < minPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}

	role := input.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	if role == domain.RoleAdmin {
		if _, err := s.repo.FindAdmin(ctx); err == nil {
			return nil, domain.ErrAdminExists
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		Mobile:       input.Mobile,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(created.ID, created.Role)
	if err != nil {
		return nil, err
	}

	metrics.SignupsTotal.WithLabelValues(created.Role).Inc()
	s.log.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user registered")

	return &ports.AuthResult{User: created, Token: token}, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password return the same error so callers cannot tell which field failed.
func (s *UserService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("user_id", user.ID).Msg("user logged in")

	return &ports.AuthResult{User: user, Token: token}, nil
}

// Profile returns the user record without its password hash (the hash is
// excluded from serialization at the domain level).
func (s *UserService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// ChangePassword swaps the stored hash after verifying the current password,
// then revokes all tokens issued before the change.
func (s *UserService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return domain.ErrMissingPasswords
	}
	if len(newPassword) < minPasswordLength {
		return domain.ErrPasswordTooShort
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return domain.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return err
	}

	if s.revoker != nil {
		if err := s.revoker.Revoke(ctx, userID, time.Now().UTC()); err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("failed to revoke existing tokens")
		}
	}

	s.log.Info().Str("user_id", userID).Msg("password changed")

	return nil
}
