package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ShareUsecase builds product share links.
type ShareUsecase interface {
	ShareProduct(ctx context.Context, productID uuid.UUID) (*entity.ShareLink, error)
	ShareQRCode(ctx context.Context, productID uuid.UUID) ([]byte, error)

	// ResolveLink returns the product a scanned or opened deep link points to.
	ResolveLink(ctx context.Context, link string) (*entity.Product, error)
}
