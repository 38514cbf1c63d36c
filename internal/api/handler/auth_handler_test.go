package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
	"github.com/sweetshop/sweet-shop-api/internal/core/ports"
)

type stubUserService struct {
	signupFn         func(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error)
	loginFn          func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	profileFn        func(ctx context.Context, userID string) (*domain.User, error)
	changePasswordFn func(ctx context.Context, userID, currentPassword, newPassword string) error
}

func (s *stubUserService) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
	return s.signupFn(ctx, input)
}

func (s *stubUserService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubUserService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.profileFn(ctx, userID)
}

func (s *stubUserService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	return s.changePasswordFn(ctx, userID, currentPassword, newPassword)
}

func newJSONContext(method, target, body string) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e, e.NewContext(req, rec), rec
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	svc := &stubUserService{
		signupFn: func(_ context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
			if input.Name != "Alice" || input.Email != "alice@example.com" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.AuthResult{
				User:  &domain.User{ID: "user_1", Name: input.Name, Email: input.Email, Role: domain.RoleCustomer},
				Token: "tok123",
			}, nil
		},
	}
	h := NewAuthHandler(svc)

	body := `{"name":"Alice","email":"alice@example.com","mobile":"12345","password":"secret1"}`
	_, c, rec := newJSONContext(http.MethodPost, "/api/auth/signup", body)

	if err := h.Signup(c); err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["message"] != "User registered successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	if resp["token"] != "tok123" {
		t.Fatalf("unexpected token: %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["id"] != "user_1" {
		t.Fatalf("unexpected user: %v", resp["user"])
	}
	if _, leaked := user["password"]; leaked {
		t.Fatalf("password hash leaked in response")
	}
}

func TestAuthHandler_Signup_ShortPassword(t *testing.T) {
	h := NewAuthHandler(&stubUserService{})

	body := `{"name":"Alice","email":"alice@example.com","mobile":"12345","password":"123"}`
	_, c, _ := newJSONContext(http.MethodPost, "/api/auth/signup", body)

	err := h.Signup(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Signup_InvalidRole(t *testing.T) {
	h := NewAuthHandler(&stubUserService{})

	body := `{"name":"Alice","email":"alice@example.com","mobile":"12345","password":"secret1","role":"superuser"}`
	_, c, _ := newJSONContext(http.MethodPost, "/api/auth/signup", body)

	err := h.Signup(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Signup_ServiceError(t *testing.T) {
	svc := &stubUserService{
		signupFn: func(_ context.Context, _ ports.SignupInput) (*ports.AuthResult, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(svc)

	body := `{"name":"Alice","email":"alice@example.com","mobile":"12345","password":"secret1"}`
	_, c, _ := newJSONContext(http.MethodPost, "/api/auth/signup", body)

	if err := h.Signup(c); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists to pass through, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &stubUserService{
		loginFn: func(_ context.Context, email, password string) (*ports.AuthResult, error) {
			if email != "alice@example.com" || password != "secret1" {
				t.Fatalf("unexpected credentials: %s / %s", email, password)
			}
			return &ports.AuthResult{
				User:  &domain.User{ID: "user_1", Email: email, Role: domain.RoleCustomer},
				Token: "tok123",
			}, nil
		},
	}
	h := NewAuthHandler(svc)

	body := `{"email":"alice@example.com","password":"secret1"}`
	_, c, rec := newJSONContext(http.MethodPost, "/api/auth/login", body)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["message"] != "Login successful" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	svc := &stubUserService{
		loginFn: func(_ context.Context, _, _ string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(svc)

	body := `{"email":"alice@example.com","password":"wrong"}`
	_, c, _ := newJSONContext(http.MethodPost, "/api/auth/login", body)

	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials to pass through, got %v", err)
	}
}

func TestAuthHandler_Profile_Success(t *testing.T) {
	svc := &stubUserService{
		profileFn: func(_ context.Context, userID string) (*domain.User, error) {
			if userID != "user_1" {
				t.Fatalf("unexpected user id: %s", userID)
			}
			return &domain.User{ID: "user_1", Name: "Alice", Role: domain.RoleCustomer}, nil
		},
	}
	h := NewAuthHandler(svc)

	_, c, rec := newJSONContext(http.MethodGet, "/api/auth/profile", "")
	c.Set("user_id", "user_1")
	c.Set("role", domain.RoleCustomer)

	if err := h.Profile(c); err != nil {
		t.Fatalf("Profile returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["name"] != "Alice" {
		t.Fatalf("unexpected user: %v", resp["user"])
	}
}

func TestAuthHandler_Profile_MissingClaims(t *testing.T) {
	h := NewAuthHandler(&stubUserService{})

	_, c, _ := newJSONContext(http.MethodGet, "/api/auth/profile", "")

	err := h.Profile(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuthHandler_ChangePassword_Success(t *testing.T) {
	svc := &stubUserService{
		changePasswordFn: func(_ context.Context, userID, current, next string) error {
			if userID != "user_1" || current != "secret1" || next != "newsecret" {
				t.Fatalf("unexpected args: %s %s %s", userID, current, next)
			}
			return nil
		},
	}
	h := NewAuthHandler(svc)

	body := `{"currentPassword":"secret1","newPassword":"newsecret"}`
	_, c, rec := newJSONContext(http.MethodPut, "/api/auth/profile/password", body)
	c.Set("user_id", "user_1")

	if err := h.ChangePassword(c); err != nil {
		t.Fatalf("ChangePassword returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["message"] != "Password updated successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestAuthHandler_ChangePassword_Validation(t *testing.T) {
	h := NewAuthHandler(&stubUserService{})

	body := `{"currentPassword":"secret1","newPassword":"short"}`
	_, c, _ := newJSONContext(http.MethodPut, "/api/auth/profile/password", body)
	c.Set("user_id", "user_1")

	err := h.ChangePassword(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
