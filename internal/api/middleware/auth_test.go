package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
)

type stubVerifier struct {
	claims *domain.Claims
	err    error
}

func (s *stubVerifier) Verify(_ string) (*domain.Claims, error) {
	return s.claims, s.err
}

type stubRevocationChecker struct {
	revoked bool
	err     error
}

func (s *stubRevocationChecker) IsRevoked(_ context.Context, _ string, _ time.Time) (bool, error) {
	return s.revoked, s.err
}

func newAuthContext(t *testing.T, authHeader string) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e, e.NewContext(req, rec), rec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	_, c, rec := newAuthContext(t, "Bearer sometoken")

	verifier := &stubVerifier{claims: &domain.Claims{
		UserID:   "user_1",
		Role:     domain.RoleAdmin,
		IssuedAt: time.Now().UTC(),
	}}

	called := false
	handler := Auth(verifier, nil)(func(c echo.Context) error {
		called = true
		if c.Get("user_id") != "user_1" {
			t.Fatalf("user_id not set")
		}
		if c.Get("role") != domain.RoleAdmin {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e, c, rec := newAuthContext(t, "")

	handler := Auth(&stubVerifier{}, nil)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	e, c, rec := newAuthContext(t, "Token abc")

	handler := Auth(&stubVerifier{}, nil)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	e, c, rec := newAuthContext(t, "Bearer bad")

	handler := Auth(&stubVerifier{err: domain.ErrTokenInvalid}, nil)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	if err == nil {
		t.Fatalf("expected error")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
	if he.Message != domain.ErrTokenInvalid.Error() {
		t.Fatalf("unexpected message: %v", he.Message)
	}
	e.HTTPErrorHandler(err, c)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	_, c, _ := newAuthContext(t, "Bearer expired")

	handler := Auth(&stubVerifier{err: domain.ErrTokenExpired}, nil)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
	if he.Message != domain.ErrTokenExpired.Error() {
		t.Fatalf("expected expiry message, got %v", he.Message)
	}
}

func TestAuthMiddleware_RevokedToken(t *testing.T) {
	_, c, _ := newAuthContext(t, "Bearer sometoken")

	verifier := &stubVerifier{claims: &domain.Claims{
		UserID:   "user_1",
		Role:     domain.RoleCustomer,
		IssuedAt: time.Now().Add(-time.Hour).UTC(),
	}}

	handler := Auth(verifier, &stubRevocationChecker{revoked: true})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
	if he.Message != domain.ErrTokenRevoked.Error() {
		t.Fatalf("expected revocation message, got %v", he.Message)
	}
}

func TestAuthMiddleware_RevocationCheckFailsOpen(t *testing.T) {
	_, c, rec := newAuthContext(t, "Bearer sometoken")

	verifier := &stubVerifier{claims: &domain.Claims{
		UserID:   "user_1",
		Role:     domain.RoleCustomer,
		IssuedAt: time.Now().UTC(),
	}}
	checker := &stubRevocationChecker{revoked: true, err: context.DeadlineExceeded}

	called := false
	handler := Auth(verifier, checker)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("expected request to proceed when revocation store is down")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
