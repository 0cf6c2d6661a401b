package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CreatePaymentIntentInput defines an intent request in major currency units.
type CreatePaymentIntentInput struct {
	Amount         *float64 // nil when the caller sent no amount
	Currency       string   // optional, defaults to the configured currency
	IdempotencyKey string   // optional
}

// PaymentIntentOutput carries the provider's client secret verbatim.
type PaymentIntentOutput struct {
	ClientSecret string `json:"clientSecret"`
}

// PaymentUsecase creates payment intents.
type PaymentUsecase interface {
	CreatePaymentIntent(ctx context.Context, input *CreatePaymentIntentInput) (*PaymentIntentOutput, error)
	ClientConfig(ctx context.Context) *entity.PaymentClientConfig
}
