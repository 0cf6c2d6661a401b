package service

import (
	"context"
)

// EventTypeReviewSubmitted is the event_type attribute of review events.
const EventTypeReviewSubmitted = "review.submitted"

// ReviewSubmittedEvent is published after a review is committed so the rating worker
// can recompute the product's aggregate rating.
type ReviewSubmittedEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	ReviewID  string `json:"review_id"`
	ProductID string `json:"product_id"`
	UserID    string `json:"user_id"`
	Rating    int    `json:"rating"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReviewSubmitted publishes a review event for async processing
	PublishReviewSubmitted(ctx context.Context, event *ReviewSubmittedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
