package impl

import (
	"context"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeProviderError struct {
	msg string
}

func (e *fakeProviderError) Error() string           { return "stripe: " + e.msg }
func (e *fakeProviderError) ProviderMessage() string { return e.msg }

func amountPtr(v float64) *float64 {
	return &v
}

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{19.999, 2000},
		{19.99, 1999},
		{0.005, 1},
		{0.004, 0},
		{10, 1000},
		{1.255, 126},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToMinorUnits(tt.amount), "amount %v", tt.amount)
	}
}

func TestPaymentService_CreatePaymentIntent_RoundsToMinorUnits(t *testing.T) {
	provider := mockSvc.NewMockPaymentProvider(t)
	payments := NewPaymentService(provider, newCatalogTestConfig(), newDiscardLogger())
	ctx := context.Background()

	provider.EXPECT().
		CreatePaymentIntent(ctx, &service.PaymentIntentRequest{Amount: 2000, Currency: "usd", IdempotencyKey: "order-7"}).
		Return(&entity.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret_abc"}, nil)

	out, err := payments.CreatePaymentIntent(ctx, &usecase.CreatePaymentIntentInput{
		Amount:         amountPtr(19.999),
		IdempotencyKey: "order-7",
	})

	require.NoError(t, err)
	assert.Equal(t, "pi_1_secret_abc", out.ClientSecret)
}

func TestPaymentService_CreatePaymentIntent_NonPositiveAmountSkipsProvider(t *testing.T) {
	provider := mockSvc.NewMockPaymentProvider(t)
	payments := NewPaymentService(provider, newCatalogTestConfig(), newDiscardLogger())

	for _, amount := range []*float64{nil, amountPtr(0), amountPtr(-5), amountPtr(0.001)} {
		_, err := payments.CreatePaymentIntent(context.Background(), &usecase.CreatePaymentIntentInput{Amount: amount})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
	}

	provider.AssertNotCalled(t, "CreatePaymentIntent", mock.Anything, mock.Anything)
}

func TestPaymentService_CreatePaymentIntent_CurrencyNormalized(t *testing.T) {
	provider := mockSvc.NewMockPaymentProvider(t)
	payments := NewPaymentService(provider, newCatalogTestConfig(), newDiscardLogger())
	ctx := context.Background()

	provider.EXPECT().
		CreatePaymentIntent(ctx, mock.MatchedBy(func(req *service.PaymentIntentRequest) bool {
			return req.Currency == "eur" && req.Amount == 500
		})).
		Return(&entity.PaymentIntent{ClientSecret: "secret"}, nil)

	_, err := payments.CreatePaymentIntent(ctx, &usecase.CreatePaymentIntentInput{Amount: amountPtr(5), Currency: " EUR "})

	require.NoError(t, err)
}

func TestPaymentService_CreatePaymentIntent_ProviderErrorBecomesInternal(t *testing.T) {
	provider := mockSvc.NewMockPaymentProvider(t)
	payments := NewPaymentService(provider, newCatalogTestConfig(), newDiscardLogger())
	ctx := context.Background()

	provider.EXPECT().
		CreatePaymentIntent(ctx, mock.Anything).
		Return(nil, errors.Wrap(&fakeProviderError{msg: "Your card was declined."}, "create intent"))

	_, err := payments.CreatePaymentIntent(ctx, &usecase.CreatePaymentIntentInput{Amount: amountPtr(12)})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInternal)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "Your card was declined.", appErr.Message())
}

func TestPaymentService_ClientConfig(t *testing.T) {
	cfg := newCatalogTestConfig()
	cfg.Stripe.PublishableKey = "pk_test_123"
	payments := NewPaymentService(mockSvc.NewMockPaymentProvider(t), cfg, newDiscardLogger())

	got := payments.ClientConfig(context.Background())

	assert.Equal(t, "pk_test_123", got.PublishableKey)
	assert.Equal(t, "shop", got.URLScheme)
}
