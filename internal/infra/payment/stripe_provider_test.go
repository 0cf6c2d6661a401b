package payment

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *stripeProvider {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return newStripeProvider("sk_test_123", &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		HTTPClient:        srv.Client(),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestStripeProvider_CreatePaymentIntent(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "order-42", r.Header.Get("Idempotency-Key"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "1999", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, "true", r.PostForm.Get("automatic_payment_methods[enabled]"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"pi_1","object":"payment_intent","client_secret":"pi_1_secret_abc","amount":1999,"currency":"usd"}`)
	})

	intent, err := provider.CreatePaymentIntent(context.Background(), &service.PaymentIntentRequest{
		Amount:         1999,
		Currency:       "usd",
		IdempotencyKey: "order-42",
	})
	require.NoError(t, err)

	assert.Equal(t, "pi_1", intent.ID)
	assert.Equal(t, "pi_1_secret_abc", intent.ClientSecret)
	assert.Equal(t, int64(1999), intent.Amount)
	assert.Equal(t, "usd", intent.Currency)
}

func TestStripeProvider_CreatePaymentIntent_WithoutIdempotencyKey(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Idempotency-Key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"pi_2","object":"payment_intent","client_secret":"s","amount":100,"currency":"eur"}`)
	})

	_, err := provider.CreatePaymentIntent(context.Background(), &service.PaymentIntentRequest{Amount: 100, Currency: "eur"})

	assert.NoError(t, err)
}

func TestStripeProvider_CreatePaymentIntent_ProviderError(t *testing.T) {
	calls := 0
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"type":"invalid_request_error","code":"amount_too_small","message":"Amount must be at least $0.50 usd"}}`)
	})

	_, err := provider.CreatePaymentIntent(context.Background(), &service.PaymentIntentRequest{Amount: 1, Currency: "usd"})

	var providerErr service.ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, "Amount must be at least $0.50 usd", providerErr.ProviderMessage())
	assert.Equal(t, 1, calls)
}
