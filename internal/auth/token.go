package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long issued access tokens stay valid.
const DefaultTokenTTL = 24 * time.Hour

// TokenGenerator issues JWT access tokens for authenticated principals.
// Tokens carry the subject id, email and role so the middleware can resolve
// identity without a database round trip.
type TokenGenerator struct {
	signedKey    []byte
	signedMethod jwt.SigningMethod
	ttl          time.Duration
}

// NewTokenGenerator creates a generator signing with HMAC-SHA256.
func NewTokenGenerator(secret string, ttl time.Duration) *TokenGenerator {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenGenerator{
		signedKey:    []byte(secret),
		signedMethod: jwt.SigningMethodHS256,
		ttl:          ttl,
	}
}

// TTL returns the configured token lifetime.
func (g *TokenGenerator) TTL() time.Duration {
	return g.ttl
}

// Generate signs a token for the given principal. The role must be one of
// the values the middleware accepts ("admin" or "user").
func (g *TokenGenerator) Generate(subjectID, email, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"uid":   subjectID,
		"email": email,
		"role":  role,
		"iat":   now.Unix(),
		"exp":   now.Add(g.ttl).Unix(),
	}
	token := jwt.NewWithClaims(g.signedMethod, claims)
	return token.SignedString(g.signedKey)
}
