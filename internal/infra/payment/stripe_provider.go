// Package payment talks to the Stripe API.
package payment

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v82"
)

// providerError keeps the Stripe error and exposes its human-readable message.
type providerError struct {
	err *stripe.Error
}

func (e *providerError) Error() string {
	return fmt.Sprintf("stripe: %s (status %d, code %q)", e.err.Msg, e.err.HTTPStatusCode, e.err.Code)
}

func (e *providerError) Unwrap() error {
	return e.err
}

// ProviderMessage returns the message Stripe wrote for humans.
func (e *providerError) ProviderMessage() string {
	return e.err.Msg
}

type stripeProvider struct {
	client *stripe.Client
}

// NewStripeProvider creates the Stripe-backed payment provider. Network
// retries are disabled; a failed call is reported to the caller once.
func NewStripeProvider(cfg *config.Config, logger *slog.Logger) service.PaymentProvider {
	return newStripeProvider(cfg.Stripe.SecretKey, &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &slogLeveledLogger{logger: logger},
	}, logger)
}

func newStripeProvider(secretKey string, backend *stripe.BackendConfig, logger *slog.Logger) *stripeProvider {
	if secretKey == "" {
		logger.Warn("Stripe secret key is not configured; payment intents will be rejected by Stripe")
	}

	return &stripeProvider{
		client: stripe.NewClient(secretKey, stripe.WithBackends(stripe.NewBackendsWithConfig(backend))),
	}
}

// CreatePaymentIntent creates an intent with automatic payment methods enabled.
func (p *stripeProvider) CreatePaymentIntent(ctx context.Context, req *service.PaymentIntentRequest) (*entity.PaymentIntent, error) {
	params := &stripe.PaymentIntentCreateParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentCreateAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	intent, err := p.client.V1PaymentIntents.Create(ctx, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			return nil, &providerError{err: stripeErr}
		}

		return nil, errors.Wrap(err, "failed to create payment intent")
	}

	return &entity.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     string(intent.Currency),
	}, nil
}

// slogLeveledLogger adapts slog to the Stripe client's logger.
type slogLeveledLogger struct {
	logger *slog.Logger
}

func (l *slogLeveledLogger) Debugf(format string, v ...any) {
	l.logger.Debug(fmt.Sprintf(format, v...), slog.String("component", "stripe"))
}

func (l *slogLeveledLogger) Infof(format string, v ...any) {
	l.logger.Debug(fmt.Sprintf(format, v...), slog.String("component", "stripe"))
}

func (l *slogLeveledLogger) Warnf(format string, v ...any) {
	l.logger.Warn(fmt.Sprintf(format, v...), slog.String("component", "stripe"))
}

func (l *slogLeveledLogger) Errorf(format string, v ...any) {
	l.logger.Error(fmt.Sprintf(format, v...), slog.String("component", "stripe"))
}
