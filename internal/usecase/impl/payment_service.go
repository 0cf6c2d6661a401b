package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const minorUnitExponent = 2

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	provider service.PaymentProvider
	stripe   *config.StripeConfig
	app      *config.AppConfig
	logger   *slog.Logger
}

// NewPaymentService is the constructor for paymentService. Missing client
// settings are reported but do not prevent startup.
func NewPaymentService(
	provider service.PaymentProvider,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PaymentUsecase {
	if cfg.Stripe.PublishableKey == "" {
		logger.Warn("Stripe publishable key is not configured")
	}
	if cfg.App.DeepLinkScheme == "" {
		logger.Warn("Deep link scheme is not configured")
	}

	return &paymentService{
		provider: provider,
		stripe:   cfg.Stripe,
		app:      cfg.App,
		logger:   logger,
	}
}

// CreatePaymentIntent validates the amount, converts it to minor units and
// asks the provider for an intent.
func (srv *paymentService) CreatePaymentIntent(ctx context.Context, input *usecase.CreatePaymentIntentInput) (*usecase.PaymentIntentOutput, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if input.Amount == nil || *input.Amount <= 0 {
		return nil, domainerrors.ErrInvalidArgument.WithMessage("Amount must be a positive number")
	}

	amount := ToMinorUnits(*input.Amount)
	if amount <= 0 {
		return nil, domainerrors.ErrInvalidArgument.WithMessage("Amount is below the smallest currency unit")
	}

	currency := strings.ToLower(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = srv.stripe.DefaultCurrency
	}

	intent, err := srv.provider.CreatePaymentIntent(ctx, &service.PaymentIntentRequest{
		Amount:         amount,
		Currency:       currency,
		IdempotencyKey: input.IdempotencyKey,
	})
	if err != nil {
		message := err.Error()
		var providerErr service.ProviderError
		if errors.As(err, &providerErr) && providerErr.ProviderMessage() != "" {
			message = providerErr.ProviderMessage()
		}

		logger.Error("Payment intent creation failed",
			slog.Int64("amount", amount),
			slog.String("currency", currency),
			slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WithMessage(message)
	}

	logger.Info("Payment intent created",
		slog.String("intentID", intent.ID),
		slog.Int64("amount", amount),
		slog.String("currency", currency))

	return &usecase.PaymentIntentOutput{ClientSecret: intent.ClientSecret}, nil
}

// ClientConfig returns the values the mobile payment sheet starts with.
func (srv *paymentService) ClientConfig(_ context.Context) *entity.PaymentClientConfig {
	return &entity.PaymentClientConfig{
		PublishableKey: srv.stripe.PublishableKey,
		URLScheme:      srv.app.DeepLinkScheme,
	}
}

// ToMinorUnits converts a major-unit amount to minor units, rounding half away from zero.
func ToMinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Shift(minorUnitExponent).Round(0).IntPart()
}
