package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/domain"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/pkg/ratelimit"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/pkg/security"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// Stable machine-readable error codes carried in the envelope's "error" field.
const (
	codeAuthentication = "authentication_error"
	codePermission     = "permission_denied"
	codeNotFound       = "not_found"
	codeValidation     = "validation_error"
	codeRateLimit      = "rate_limit_exceeded"
	codeInternal       = "internal_server_error"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to deterministic HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error", "message", "request_id"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, code, msg := resolveError(err, log, c)
		_ = c.JSON(status, errorResponse{
			Error:     code,
			Message:   msg,
			RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
		})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (status int, code, msg string) {
	// Echo's own errors: router 404/405, bind failures, and the 422s the
	// validator produces.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, codeForStatus(he.Code), fmt.Sprintf("%v", he.Message)
	}

	var le *ratelimit.LimitExceededError
	if errors.As(err, &le) {
		return http.StatusTooManyRequests, codeRateLimit, le.Error()
	}

	switch {
	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInactiveAccount),
		errors.Is(err, security.ErrInvalidToken):
		return http.StatusUnauthorized, codeAuthentication, err.Error()

	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, codePermission, err.Error()

	case errors.Is(err, domain.ErrJobNotFound),
		errors.Is(err, domain.ErrSkillNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, codeNotFound, err.Error()

	// Duplicates are client mistakes against current state.
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrSkillExists):
		return http.StatusBadRequest, codeValidation, err.Error()

	// Payloads that are well-formed but semantically unacceptable.
	case errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrInvalidSalaryRange),
		errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrPasswordNeedsDigit),
		errors.Is(err, domain.ErrPasswordNeedsUpper):
		return http.StatusUnprocessableEntity, codeValidation, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, codeInternal, "internal server error"
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return codeAuthentication
	case http.StatusForbidden:
		return codePermission
	case http.StatusNotFound:
		return codeNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return codeValidation
	case http.StatusTooManyRequests:
		return codeRateLimit
	default:
		return codeInternal
	}
}
