package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// PaymentIntentRequest describes one intent-creation call in minor currency units.
type PaymentIntentRequest struct {
	Amount         int64
	Currency       string
	IdempotencyKey string // Optional; empty means none is sent.
}

// PaymentProvider abstracts the external payment API.
type PaymentProvider interface {
	// CreatePaymentIntent creates an intent with automatic payment-method selection.
	CreatePaymentIntent(ctx context.Context, req *PaymentIntentRequest) (*entity.PaymentIntent, error)
}

// ProviderError carries the human-readable message of a failed provider call.
type ProviderError interface {
	error
	ProviderMessage() string
}
