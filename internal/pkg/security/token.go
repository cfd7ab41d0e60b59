package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed payload, expired token, or missing subject claim.
var ErrInvalidToken = errors.New("invalid authentication token")

// Claims is the decoded content of an access token.
type Claims struct {
	Subject string
	Role    string
}

// TokenCodec signs and verifies stateless HS256 access tokens. There is no
// revocation list: a token stays valid until its natural expiry.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec creates a codec with the given signing secret and default
// token lifetime.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured default token lifetime.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a token carrying {sub, role, exp=now+ttl}.
func (c *TokenCodec) Issue(subject, role string) (string, error) {
	return c.IssueWithTTL(subject, role, c.ttl)
}

// IssueWithTTL signs a token with an explicit lifetime.
func (c *TokenCodec) IssueWithTTL(subject, role string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"exp":  time.Now().Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify parses and validates a token, returning its claims. Any failure,
// including an expired token or an empty subject, yields ErrInvalidToken.
func (c *TokenCodec) Verify(token string) (*Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrInvalidToken
	}
	role, _ := claims["role"].(string)

	return &Claims{Subject: sub, Role: role}, nil
}
