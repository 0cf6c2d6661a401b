package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// CategoryRepository defines category persistence.
type CategoryRepository interface {
	// List returns every category with its subcategories.
	List(ctx context.Context) ([]*entity.Category, error)
}
