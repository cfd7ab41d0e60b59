package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/domain"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/ports"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/pkg/security"
)

// AuthService implements registration and login.
type AuthService struct {
	users  ports.UserRepository
	codec  *security.TokenCodec
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, codec *security.TokenCodec, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, logger: logger}
}

// Register creates a new account. Email and username must be unused, the
// password must satisfy the policy, and the role must belong to the closed
// set (validated at the boundary, re-checked here).
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if _, err := domain.ParseRole(string(in.Role)); err != nil {
		return nil, err
	}
	if err := security.ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if _, err := s.users.FindByUsername(ctx, in.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: hash,
		FullName:     in.FullName,
		Role:         in.Role,
		IsActive:     true,
		IsVerified:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues an access token carrying the
// username as subject and the stored role. Unknown users and wrong
// passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !security.VerifyPassword(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", domain.ErrInactiveAccount
	}

	token, err := s.codec.Issue(user.Username, string(user.Role))
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("username", user.Username).Msg("user logged in")
	return token, nil
}
