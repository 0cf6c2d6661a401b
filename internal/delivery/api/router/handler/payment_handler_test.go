package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPaymentHandler_CreatePaymentIntent(t *testing.T) {
	paymentUC := mockUsecase.NewMockPaymentUsecase(t)
	h := NewPaymentHandler(PaymentHandlerParams{PaymentUC: paymentUC})
	paymentUC.EXPECT().CreatePaymentIntent(mock.Anything, mock.MatchedBy(func(in *usecase.CreatePaymentIntentInput) bool {
		return in.Amount != nil && *in.Amount == 19.99 && in.Currency == "eur" && in.IdempotencyKey == "order-42"
	})).Return(&usecase.PaymentIntentOutput{ClientSecret: "pi_1_secret_2"}, nil).Once()

	c, rec := newTestContext(http.MethodPost, "/api/v1/payments/intents", `{"amount":19.99,"currency":"eur"}`)
	c.Request().Header.Set("Idempotency-Key", "order-42")

	require.NoError(t, h.CreatePaymentIntent(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"clientSecret":"pi_1_secret_2"}`, string(decodeEnvelope(t, rec).Data))
}

func TestPaymentHandler_CreatePaymentIntent_MissingAmount(t *testing.T) {
	paymentUC := mockUsecase.NewMockPaymentUsecase(t)
	h := NewPaymentHandler(PaymentHandlerParams{PaymentUC: paymentUC})
	paymentUC.EXPECT().CreatePaymentIntent(mock.Anything, mock.MatchedBy(func(in *usecase.CreatePaymentIntentInput) bool {
		return in.Amount == nil
	})).Return(nil, domainerrors.ErrInvalidArgument.WithDetails("amount is required")).Once()

	c, rec := newTestContext(http.MethodPost, "/api/v1/payments/intents", `{}`)

	require.NoError(t, h.CreatePaymentIntent(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPaymentHandler_GetClientConfig(t *testing.T) {
	paymentUC := mockUsecase.NewMockPaymentUsecase(t)
	h := NewPaymentHandler(PaymentHandlerParams{PaymentUC: paymentUC})
	paymentUC.EXPECT().ClientConfig(mock.Anything).
		Return(&entity.PaymentClientConfig{PublishableKey: "pk_test", URLScheme: "shop"}).Once()

	c, rec := newTestContext(http.MethodGet, "/api/v1/payments/config", "")

	require.NoError(t, h.GetClientConfig(c))
	assert.JSONEq(t, `{"publishableKey":"pk_test","urlScheme":"shop"}`, string(decodeEnvelope(t, rec).Data))
}
