package ports

import (
	"context"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Create must surface domain.ErrEmailTaken / domain.ErrUsernameTaken on
// unique-index violations.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
