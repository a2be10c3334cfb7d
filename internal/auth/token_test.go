package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	generator := NewTokenGenerator("test-jwt-secret-key-32-characters", time.Hour)

	tokenString, err := generator.Generate("customer-123", "ana@example.com", "user")
	require.NoError(t, err)
	assert.Contains(t, tokenString, ".") // JWT format

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-jwt-secret-key-32-characters"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "customer-123", claims["uid"])
	assert.Equal(t, "ana@example.com", claims["email"])
	assert.Equal(t, "user", claims["role"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp.Time, 5*time.Second)
}

func TestGenerateTokenWrongSecretFails(t *testing.T) {
	generator := NewTokenGenerator("test-jwt-secret-key-32-characters", time.Hour)

	tokenString, err := generator.Generate("customer-123", "ana@example.com", "user")
	require.NoError(t, err)

	_, err = jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("another-secret"), nil
	})
	assert.Error(t, err)
}

func TestDefaultTTLApplied(t *testing.T) {
	generator := NewTokenGenerator("secret", 0)
	assert.Equal(t, DefaultTokenTTL, generator.TTL())

	generator = NewTokenGenerator("secret", 15*time.Minute)
	assert.Equal(t, 15*time.Minute, generator.TTL())
}
