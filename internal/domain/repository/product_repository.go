// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines catalog persistence.
type ProductRepository interface {
	// List returns the products matching filter, honoring its sort order and limit.
	List(ctx context.Context, filter *entity.ProductFilter) ([]*entity.Product, error)

	// ListAll returns the whole catalog without pagination.
	ListAll(ctx context.Context) ([]*entity.Product, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListBrands returns the distinct brand names, sorted.
	ListBrands(ctx context.Context) ([]string, error)

	Create(ctx context.Context, product *entity.Product) error

	// UpdateRating stores a recomputed review aggregate on the product.
	UpdateRating(ctx context.Context, summary *entity.RatingSummary) error
}
