package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitReviewInput defines a new review.
type SubmitReviewInput struct {
	ProductID uuid.UUID
	Rating    int
	Comment   string
}

// ReviewUsecase lists and accepts product reviews.
type ReviewUsecase interface {
	ListReviews(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)
	SubmitReview(ctx context.Context, author *entity.SessionClaims, input *SubmitReviewInput) (*entity.Review, error)
}

// RatingUsecase keeps product rating aggregates in step with their reviews.
type RatingUsecase interface {
	RecomputeRating(ctx context.Context, productID uuid.UUID) (*entity.RatingSummary, error)
}
