package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists with this email")
var ErrAdminExists = errors.New("admin user already exists")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrWrongPassword = errors.New("invalid current password")
var ErrMissingFields = errors.New("all fields are required")
var ErrPasswordTooShort = errors.New("password must be at least 6 characters")
var ErrInvalidRole = errors.New("role must be customer or admin")
var ErrMissingPasswords = errors.New("both current and new passwords are required")

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Mobile       string    `json:"mobile,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidRole reports whether r is a role the system recognises.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleCustomer
}
