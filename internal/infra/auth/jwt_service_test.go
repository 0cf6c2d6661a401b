package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestJWTInspector_Inspect(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signTestToken(t, &service.TokenClaims{
		Email: "ada@example.com",
		Name:  "Ada",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "uid-1",
			ExpiresAt: jwt.NewNumericDate(expiry),
		},
	})

	claims, err := NewJWTInspector().Inspect(token)

	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.Subject)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "Ada", claims.Name)
	assert.True(t, expiry.Equal(claims.ExpiresAt.Time))
}

func TestJWTInspector_Inspect_RejectsUnexpectedAlgorithm(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "uid-1"}).
		SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewJWTInspector().Inspect(token)

	assert.Error(t, err)
}

func TestJWTInspector_ExpiresAt(t *testing.T) {
	inspector := NewJWTInspector()
	fallback := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	expiry := time.Now().Add(30 * time.Minute).Truncate(time.Second)

	withExpiry := signTestToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expiry)})
	withoutExpiry := signTestToken(t, jwt.RegisteredClaims{Subject: "uid-1"})

	assert.True(t, expiry.Equal(inspector.ExpiresAt(withExpiry, fallback)))
	assert.Equal(t, fallback, inspector.ExpiresAt(withoutExpiry, fallback))
	assert.Equal(t, fallback, inspector.ExpiresAt("not-a-token", fallback))
}
