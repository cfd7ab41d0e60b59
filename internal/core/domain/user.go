package domain

import "time"

// Role is the closed set of roles recognised by the access-control layer.
// The model is flat: admin does not implicitly satisfy an employer check.
type Role string

const (
	RoleUser     Role = "user"
	RoleEmployer Role = "employer"
	RoleAdmin    Role = "admin"
)

// ParseRole validates a raw role string against the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleEmployer, RoleAdmin:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// User models an authenticated actor in the system.
// PasswordHash is never serialised.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name,omitempty"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}
