package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CatalogUsecase serves read-only catalog data.
type CatalogUsecase interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	ListBrands(ctx context.Context) ([]string, error)
}
