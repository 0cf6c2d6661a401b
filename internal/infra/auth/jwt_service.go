// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// jwtInspector reads identity-provider tokens.
// Tokens reach it straight from the provider's sign-in response, so the
// signature is not checked here; bearer tokens on requests are verified by
// the identity provider instead.
type jwtInspector struct {
	parser *jwt.Parser
	alg    string
}

// NewJWTInspector is the constructor for jwtInspector.
func NewJWTInspector() service.TokenInspector {
	return &jwtInspector{
		parser: jwt.NewParser(),
		alg:    jwt.SigningMethodRS256.Alg(),
	}
}

// Inspect decodes the token's claims without verifying the signature.
func (s *jwtInspector) Inspect(token string) (*service.TokenClaims, error) {
	claims := &service.TokenClaims{}
	parsed, _, err := s.parser.ParseUnverified(token, claims)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode token")
	}
	if parsed.Method.Alg() != s.alg {
		return nil, errors.Errorf("unexpected signing method %s", parsed.Method.Alg())
	}

	return claims, nil
}

// ExpiresAt returns the exp claim, or fallback when the token cannot be read or has none.
func (s *jwtInspector) ExpiresAt(token string, fallback time.Time) time.Time {
	claims, err := s.Inspect(token)
	if err != nil || claims.ExpiresAt == nil {
		return fallback
	}

	return claims.ExpiresAt.Time
}
