package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/domain"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/pkg/ratelimit"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/pkg/security"
)

func renderError(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Response().Header().Set(echo.HeaderXRequestID, "req-1")

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, resp
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"unauthenticated", domain.ErrUnauthenticated, http.StatusUnauthorized, "authentication_error"},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "authentication_error"},
		{"inactive account", domain.ErrInactiveAccount, http.StatusUnauthorized, "authentication_error"},
		{"invalid token", security.ErrInvalidToken, http.StatusUnauthorized, "authentication_error"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "permission_denied"},
		{"job missing", domain.ErrJobNotFound, http.StatusNotFound, "not_found"},
		{"skill missing", domain.ErrSkillNotFound, http.StatusNotFound, "not_found"},
		{"email taken", domain.ErrEmailTaken, http.StatusBadRequest, "validation_error"},
		{"skill exists", domain.ErrSkillExists, http.StatusBadRequest, "validation_error"},
		{"weak password", domain.ErrPasswordTooShort, http.StatusUnprocessableEntity, "validation_error"},
		{"bad salary range", domain.ErrInvalidSalaryRange, http.StatusUnprocessableEntity, "validation_error"},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, "internal_server_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := renderError(t, tt.err)
			if status != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, status)
			}
			if resp.Error != tt.wantCode {
				t.Fatalf("expected code %q, got %q", tt.wantCode, resp.Error)
			}
			if resp.RequestID != "req-1" {
				t.Fatalf("request id missing from envelope: %+v", resp)
			}
		})
	}
}

func TestErrorHandler_RateLimit(t *testing.T) {
	status, resp := renderError(t, &ratelimit.LimitExceededError{RetryAfter: 42})
	if status != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", status)
	}
	if resp.Error != "rate_limit_exceeded" {
		t.Fatalf("unexpected code %q", resp.Error)
	}
}

func TestErrorHandler_InternalDetailsNotLeaked(t *testing.T) {
	_, resp := renderError(t, errors.New("pq: connection refused at 10.0.0.3"))
	if resp.Message != "internal server error" {
		t.Fatalf("internal error details leaked: %q", resp.Message)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	status, resp := renderError(t, echo.NewHTTPError(http.StatusUnprocessableEntity, "title is required"))
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", status)
	}
	if resp.Error != "validation_error" || resp.Message != "title is required" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}
