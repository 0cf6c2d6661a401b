package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// SessionListener receives session-change events from the identity provider.
type SessionListener func(ctx context.Context, event entity.SessionEvent)

// IdentityProvider abstracts the external identity service that owns credentials and sessions.
type IdentityProvider interface {
	// SignIn authenticates with email and password and starts a session.
	SignIn(ctx context.Context, email, password string) (*entity.Session, error)

	// CreateAccount registers a new principal and signs it in.
	CreateAccount(ctx context.Context, email, password, displayName string) (*entity.Session, error)

	// SignOut ends every session of subject.
	SignOut(ctx context.Context, subject string) error

	// VerifySession validates a bearer ID token and returns its claims.
	VerifySession(ctx context.Context, idToken string) (*entity.SessionClaims, error)

	// OnSessionChange registers listener for session-change events.
	// Listeners run synchronously after each successful sign-in or sign-out.
	// The returned function removes the listener.
	OnSessionChange(listener SessionListener) (unsubscribe func())
}
