package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func handleError(t *testing.T, err error) (int, response.ErrorInfo) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(err, c)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return rec.Code, *body.Error
}

func TestErrorMiddleware_AppError(t *testing.T) {
	status, info := handleError(t, errors.Wrap(domainerrors.ErrProductNotFound, "lookup"))

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "PRODUCT_NOT_FOUND", info.Code)
}

func TestErrorMiddleware_InternalCarriesMessage(t *testing.T) {
	status, info := handleError(t, domainerrors.ErrInternal.WithMessage("Your card was declined."))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", info.Code)
	assert.Equal(t, "Your card was declined.", info.Message)
}

func TestErrorMiddleware_IdentityProviderError(t *testing.T) {
	status, info := handleError(t, &googleapi.Error{Code: http.StatusBadRequest, Message: "INVALID_PASSWORD"})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, identityProviderErrorCode, info.Code)
	assert.Equal(t, "INVALID_PASSWORD", info.Message)
}

func TestErrorMiddleware_ValidationError(t *testing.T) {
	type body struct {
		Rating int `json:"rating" validate:"min=1"`
	}
	status, info := handleError(t, validator.New().Validate(&body{}))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", info.Code)
	assert.NotNil(t, info.Details)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	status, info := handleError(t, echo.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "HTTP_ERROR", info.Code)
}

func TestErrorMiddleware_UnknownError(t *testing.T) {
	status, info := handleError(t, errors.New("db exploded"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL_ERROR", info.Code)
	assert.NotContains(t, info.Message, "db exploded")
}
