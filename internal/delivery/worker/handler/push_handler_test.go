package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockRatingUsecase) {
	ratingUC := mockUsecase.NewMockRatingUsecase(t)
	if cfg == nil {
		cfg = &config.Config{}
	}

	return NewPushHandler(PushHandlerParams{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		RatingUC: ratingUC,
	}), ratingUC
}

func pushBody(t *testing.T, event any, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(t *testing.T, h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))

	return rec
}

func TestPushHandler_RecomputesRating(t *testing.T) {
	h, ratingUC := newTestPushHandler(t, nil)
	productID := uuid.New()

	ratingUC.EXPECT().RecomputeRating(mock.Anything, productID).
		RunAndReturn(func(ctx context.Context, id uuid.UUID) (*entity.RatingSummary, error) {
			return &entity.RatingSummary{ProductID: id, Average: 4.5, NumReviews: 2}, nil
		}).Once()

	body := pushBody(t, service.ReviewSubmittedEvent{ReviewID: uuid.NewString(), ProductID: productID.String(), Rating: 4},
		map[string]string{"event_type": service.EventTypeReviewSubmitted, "request_id": "req-9"})

	rec := servePush(t, h, body, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_Outcomes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "database failure is retried", err: errors.New("connection reset"), wantCode: http.StatusServiceUnavailable},
		{name: "missing product is dropped", err: errors.Wrap(domainerrors.ErrProductNotFound, "lookup"), wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ratingUC := newTestPushHandler(t, nil)
			productID := uuid.New()
			ratingUC.EXPECT().RecomputeRating(mock.Anything, productID).Return(nil, tt.err).Once()

			rec := servePush(t, h, pushBody(t, service.ReviewSubmittedEvent{ProductID: productID.String()}, nil), nil)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{name: "not json", body: "{", wantCode: http.StatusBadRequest},
		{name: "bad base64", body: `{"message":{"data":"%%%"}}`, wantCode: http.StatusBadRequest},
		{
			name:     "bad event json",
			body:     `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[1,2")) + `"}}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "invalid product id is acknowledged",
			body:     `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte(`{"product_id":"nope"}`)) + `"}}`,
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ratingUC := newTestPushHandler(t, nil)

			rec := servePush(t, h, tt.body, nil)

			assert.Equal(t, tt.wantCode, rec.Code)
			ratingUC.AssertNotCalled(t, "RecomputeRating", mock.Anything, mock.Anything)
		})
	}
}

func TestPushHandler_SkipsOtherEventTypes(t *testing.T) {
	h, ratingUC := newTestPushHandler(t, nil)

	body := pushBody(t, map[string]string{"order_id": "o-1"}, map[string]string{"event_type": "order.placed"})
	rec := servePush(t, h, body, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	ratingUC.AssertNotCalled(t, "RecomputeRating", mock.Anything, mock.Anything)
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"

	t.Run("missing token", func(t *testing.T) {
		h, ratingUC := newTestPushHandler(t, cfg)

		rec := servePush(t, h, pushBody(t, service.ReviewSubmittedEvent{ProductID: uuid.NewString()}, nil), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		ratingUC.AssertNotCalled(t, "RecomputeRating", mock.Anything, mock.Anything)
	})

	t.Run("valid token", func(t *testing.T) {
		h, ratingUC := newTestPushHandler(t, cfg)
		var gotAudience string
		h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			gotAudience = audience
			if token != "signed" {
				return nil, errors.New("bad signature")
			}

			return &idtoken.Payload{Issuer: "https://accounts.google.com"}, nil
		}
		productID := uuid.New()
		ratingUC.EXPECT().RecomputeRating(mock.Anything, productID).Return(&entity.RatingSummary{}, nil).Once()

		rec := servePush(t, h, pushBody(t, service.ReviewSubmittedEvent{ProductID: productID.String()}, nil),
			http.Header{"Authorization": []string{"Bearer signed"}})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://example.com/push", gotAudience)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		h, _ := newTestPushHandler(t, cfg)
		h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example"}, nil
		}

		rec := servePush(t, h, pushBody(t, service.ReviewSubmittedEvent{ProductID: uuid.NewString()}, nil),
			http.Header{"Authorization": []string{"Bearer signed"}})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestPushHandler_LocalProviderSkipsVerification(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}
	cfg.Env.Env = "production"

	h, _ := newTestPushHandler(t, cfg)

	assert.False(t, h.verifyPushAuth)
}
