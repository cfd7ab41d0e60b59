package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenCodec_IssueVerifyRoundtrip(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	token, err := codec.Issue("alice", "employer")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("expected subject alice, got %q", claims.Subject)
	}
	if claims.Role != "employer" {
		t.Fatalf("expected role employer, got %q", claims.Role)
	}
}

func TestTokenCodec_ExpiredToken(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	token, err := codec.IssueWithTTL("alice", "user", -time.Minute)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := codec.Verify(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	token, err := NewTokenCodec("secret-a", time.Hour).Issue("alice", "user")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := NewTokenCodec("secret-b", time.Hour).Verify(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestTokenCodec_MalformedToken(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)
	if _, err := codec.Verify("not-a-token"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, err := codec.Verify(""); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for empty string, got %v", err)
	}
}

func TestTokenCodec_MissingSubject(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := NewTokenCodec("secret", time.Hour).Verify(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for missing subject, got %v", err)
	}
}

func TestTokenCodec_RejectsUnexpectedAlgorithm(t *testing.T) {
	// alg=none style forgeries must not pass verification
	signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  "alice",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := NewTokenCodec("secret", time.Hour).Verify(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for unsigned token, got %v", err)
	}
}
