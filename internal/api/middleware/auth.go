package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/domain"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/ports"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/pkg/security"
)

// userContextKey is where the authenticated *domain.User lives in the echo
// context once Auth (or OptionalAuth with a valid token) has run.
const userContextKey = "auth_user"

// Auth validates the bearer token, loads the account it names, and injects
// the *domain.User into context. Missing header, invalid token, unknown user,
// or a deactivated account all reject with 401 via domain.ErrUnauthenticated.
func Auth(codec *security.TokenCodec, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := resolveUser(c, codec, users)
			if err != nil {
				return err
			}
			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// OptionalAuth resolves the bearer token when one is present and valid, and
// otherwise treats the request as anonymous. Any resolution failure (missing
// or malformed header, bad token, unknown or inactive account) downgrades to
// anonymous instead of rejecting, so public routes stay readable.
func OptionalAuth(codec *security.TokenCodec, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if user, err := resolveUser(c, codec, users); err == nil {
				c.Set(userContextKey, user)
			}
			return next(c)
		}
	}
}

func resolveUser(c echo.Context, codec *security.TokenCodec, users ports.UserRepository) (*domain.User, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return nil, domain.ErrUnauthenticated
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, domain.ErrUnauthenticated
	}

	claims, err := codec.Verify(parts[1])
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	user, err := users.FindByUsername(c.Request().Context(), claims.Subject)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	if !user.IsActive {
		return nil, domain.ErrInactiveAccount
	}

	return user, nil
}

// CurrentUser returns the authenticated user injected by Auth, or nil when
// the request is anonymous.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(userContextKey).(*domain.User)
	return user
}
