// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the profile data submitted at registration.
// The password is handed to the identity provider and never stored in the profile.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    *string
}

// --- Output DTOs ---

// AuthResult returns the provider session together with the published current user.
type AuthResult struct {
	Session *entity.Session
	User    *entity.User
}

// AuthUsecase mirrors identity-provider sessions into current-user state and
// wraps the provider's login, registration, logout and profile update calls.
type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, input *RegisterInput) (*AuthResult, error)
	Logout(ctx context.Context, subject string) error

	// UpdateUser merges patch into the current user's profile. It returns nil
	// without writing when the subject has no current user.
	UpdateUser(ctx context.Context, subject string, patch *entity.UserPatch) (*entity.User, error)

	// RestoreSession treats a verified bearer token as a session-change event
	// when no event has been processed for its subject yet.
	RestoreSession(ctx context.Context, claims *entity.SessionClaims) entity.AuthSnapshot

	// Snapshot returns the current-user state of subject.
	Snapshot(subject string) entity.AuthSnapshot

	// Subscribe streams every state change of subject. The current state is
	// delivered first. The returned function ends the subscription.
	Subscribe(subject string) (<-chan entity.AuthSnapshot, func())
}
