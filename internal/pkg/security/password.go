package security

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/domain"
)

// bcrypt only hashes the first 72 bytes of input. Longer passwords are
// truncated before hashing so Hash and Verify agree, which caps effective
// password entropy at 72 bytes.
const maxPasswordBytes = 72

func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

// HashPassword returns a salted bcrypt hash of password. The salt is random,
// so two hashes of the same password differ.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncatePassword(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored hash.
// A malformed hash is treated as a mismatch, never an error.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(password)) == nil
}

// ValidatePassword enforces the registration password policy:
// at least 8 characters, one digit, and one uppercase letter.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return domain.ErrPasswordTooShort
	}
	var hasDigit, hasUpper bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}
	if !hasDigit {
		return domain.ErrPasswordNeedsDigit
	}
	if !hasUpper {
		return domain.ErrPasswordNeedsUpper
	}
	return nil
}
