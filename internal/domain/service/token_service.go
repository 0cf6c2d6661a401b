package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the identity-token claims the service reads without verifying the signature.
type TokenClaims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenInspector reads claims from tokens freshly issued by the identity provider.
type TokenInspector interface {
	// Inspect decodes a token's claims. The signature is not checked.
	Inspect(token string) (*TokenClaims, error)

	// ExpiresAt returns the token's expiry, or fallback when the token carries none.
	ExpiresAt(token string, fallback time.Time) time.Time
}
