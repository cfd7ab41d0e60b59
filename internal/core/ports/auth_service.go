package ports

import (
	"context"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/domain"
)

// RegisterInput carries a new account registration.
type RegisterInput struct {
	Email    string
	Username string
	Password string
	FullName string
	Role     domain.Role
}

// AuthService implements registration and login use cases.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login returns a signed access token on success.
	Login(ctx context.Context, username, password string) (string, error)
}
