package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
)

func handleError(t *testing.T, err error, debug bool) (*httptest.ResponseRecorder, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop(), debug)(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return rec, resp
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrMissingFields, http.StatusBadRequest},
		{domain.ErrPasswordTooShort, http.StatusBadRequest},
		{domain.ErrUserExists, http.StatusBadRequest},
		{domain.ErrAdminExists, http.StatusBadRequest},
		{domain.ErrSweetExists, http.StatusBadRequest},
		{domain.ErrOutOfStock, http.StatusBadRequest},
		{domain.ErrNegativeValues, http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrNoToken, http.StatusUnauthorized},
		{domain.ErrTokenExpired, http.StatusUnauthorized},
		{domain.ErrTokenRevoked, http.StatusUnauthorized},
		{domain.ErrWrongPassword, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrSweetNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			rec, resp := handleError(t, tc.err, false)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if resp.Error != tc.err.Error() {
				t.Fatalf("expected message %q, got %q", tc.err.Error(), resp.Error)
			}
		})
	}
}

func TestErrorHandler_UnknownRoute(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/nope", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop(), false)(echo.ErrNotFound, c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "Route not found" {
		t.Fatalf("unexpected error message: %q", resp.Error)
	}
	if resp.Path != "/nope" || resp.Method != http.MethodPost {
		t.Fatalf("expected path and method in envelope, got %+v", resp)
	}
}

func TestErrorHandler_HTTPErrorPassthrough(t *testing.T) {
	rec, resp := handleError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), false)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if resp.Error != "invalid payload" {
		t.Fatalf("unexpected message: %q", resp.Error)
	}
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	rec, resp := handleError(t, errors.New("mongo: connection reset"), false)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if resp.Error != "internal server error" {
		t.Fatalf("expected generic message, got %q", resp.Error)
	}
	if resp.Detail != "" {
		t.Fatalf("detail must be empty outside debug mode, got %q", resp.Detail)
	}
}

func TestErrorHandler_DebugIncludesDetail(t *testing.T) {
	_, resp := handleError(t, errors.New("mongo: connection reset"), true)
	if resp.Detail != "mongo: connection reset" {
		t.Fatalf("expected detail in debug mode, got %q", resp.Detail)
	}
}
