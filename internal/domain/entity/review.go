package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// MinReviewRating is the lowest star rating a review can carry.
	MinReviewRating = 1
	// MaxReviewRating is the highest star rating a review can carry.
	MaxReviewRating = 5
)

// Review is a shopper's rating of a product. Reviews are never edited in place.
type Review struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"productId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// RatingSummary is the aggregate of all reviews of one product.
type RatingSummary struct {
	ProductID  uuid.UUID
	Average    float64
	NumReviews int
}
