package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository defines review persistence.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error

	// ListByProduct returns a product's reviews, newest first.
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)

	// Summarize computes the average rating and review count of a product.
	Summarize(ctx context.Context, productID uuid.UUID) (*entity.RatingSummary, error)
}
