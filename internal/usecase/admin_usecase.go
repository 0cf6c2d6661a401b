package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ImageUpload is an image submitted with a new product.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// CreateProductInput defines a product added from the admin dashboard.
type CreateProductInput struct {
	Name          string
	Description   string
	CategoryID    string
	SubCategoryID string
	Brand         string
	Price         float64
	CountInStock  int
	IsDeal        bool
	Image         *ImageUpload
}

// AdminUsecase backs the admin dashboard screens. Listings never fail; a fetch
// failure is reported through the listing state.
type AdminUsecase interface {
	ListProducts(ctx context.Context) entity.Listing[*entity.Product]
	ListUsers(ctx context.Context) entity.Listing[*entity.User]
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
}
