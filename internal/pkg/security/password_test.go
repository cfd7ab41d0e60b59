package security

import (
	"strings"
	"testing"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/domain"
)

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	h1, err := HashPassword("Sup3rSecret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	h2, err := HashPassword("Sup3rSecret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected distinct hashes for the same password")
	}
	if h1 == "Sup3rSecret" {
		t.Fatalf("hash must not equal the plaintext")
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if !VerifyPassword("Sup3rSecret", hash) {
		t.Fatalf("expected correct password to verify")
	}
	if VerifyPassword("WrongPass1", hash) {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	if VerifyPassword("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must verify as false")
	}
	if VerifyPassword("anything", "") {
		t.Fatalf("empty hash must verify as false")
	}
}

func TestPassword_TruncatedAt72Bytes(t *testing.T) {
	long := strings.Repeat("a", 72) + "tail1"
	hash, err := HashPassword(long)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	// bytes beyond 72 do not participate in the hash
	if !VerifyPassword(strings.Repeat("a", 72)+"tail2", hash) {
		t.Fatalf("expected candidates differing only after byte 72 to match")
	}
	if VerifyPassword(strings.Repeat("a", 71), hash) {
		t.Fatalf("expected shorter password to fail")
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid", "Passw0rd", nil},
		{"too short", "P1short", domain.ErrPasswordTooShort},
		{"no digit", "Password", domain.ErrPasswordNeedsDigit},
		{"no uppercase", "passw0rd", domain.ErrPasswordNeedsUpper},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidatePassword(tt.password); err != tt.wantErr {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
