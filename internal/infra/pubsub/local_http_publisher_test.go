package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishReviewSubmitted(t *testing.T) {
	var received PushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	event := &service.ReviewSubmittedEvent{
		RequestID: "req-1",
		ReviewID:  "review-1",
		ProductID: "product-1",
		UserID:    "uid-1",
		Rating:    4,
	}

	err := NewLocalHTTPPublisher(srv.URL, newDiscardLogger()).PublishReviewSubmitted(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "review-1", received.Message.MessageID)
	assert.Equal(t, service.EventTypeReviewSubmitted, received.Message.Attributes["event_type"])
	assert.Equal(t, "product-1", received.Message.Attributes["product_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.ReviewSubmittedEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_WorkerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := NewLocalHTTPPublisher(srv.URL, newDiscardLogger()).PublishReviewSubmitted(context.Background(),
		&service.ReviewSubmittedEvent{ReviewID: "review-1", ProductID: "product-1"})

	assert.ErrorContains(t, err, "503")
}

func TestEventAttributes_OmitsEmptyRequestID(t *testing.T) {
	attrs := eventAttributes(&service.ReviewSubmittedEvent{ReviewID: "r", ProductID: "p"})

	assert.NotContains(t, attrs, "request_id")
	assert.Equal(t, "r", attrs["review_id"])
}
