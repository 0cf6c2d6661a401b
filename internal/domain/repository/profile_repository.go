package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrProfileNotFound is returned when no profile document exists for a subject.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the profile document store, keyed by session subject identifier.
type ProfileRepository interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// Create writes a whole profile document, replacing any existing one.
	Create(ctx context.Context, user *entity.User) error

	// Merge writes only the fields set in patch and leaves every other field untouched.
	Merge(ctx context.Context, id string, patch *entity.UserPatch) error

	// List returns every profile document.
	List(ctx context.Context) ([]*entity.User, error)
}
