package domain

import "errors"

// Sentinel errors mapped to HTTP status codes by the API error handler.
var (
	ErrUnauthenticated    = errors.New("could not validate credentials")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInactiveAccount    = errors.New("account is inactive")
	ErrForbidden          = errors.New("permission denied")

	ErrUserNotFound  = errors.New("user not found")
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")
	ErrInvalidRole   = errors.New("invalid role")

	ErrJobNotFound   = errors.New("job posting not found")
	ErrSkillExists   = errors.New("skill already exists")
	ErrSkillNotFound = errors.New("skill not found")

	ErrInvalidSalaryRange = errors.New("salary_max must be greater than or equal to salary_min")

	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordNeedsDigit = errors.New("password must contain at least one digit")
	ErrPasswordNeedsUpper = errors.New("password must contain at least one uppercase letter")
)
