package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShareHandler_ShareProduct(t *testing.T) {
	shareUC := mockUsecase.NewMockShareUsecase(t)
	h := NewShareHandler(ShareHandlerParams{ShareUC: shareUC})
	id := uuid.New()
	link := entity.ShareLink{URL: "shop://product/" + id.String(), Message: "Check out this product: Boot - shop://product/" + id.String()}
	shareUC.EXPECT().ShareProduct(mock.Anything, id).Return(&link, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, h.ShareProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"url":"shop://product/`+id.String()+`"`)
}

func TestShareHandler_ShareQRCode(t *testing.T) {
	shareUC := mockUsecase.NewMockShareUsecase(t)
	h := NewShareHandler(ShareHandlerParams{ShareUC: shareUC})
	id := uuid.New()
	png := []byte("\x89PNG\r\n\x1a\nrest")
	shareUC.EXPECT().ShareQRCode(mock.Anything, id).Return(png, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, h.ShareQRCode(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestShareHandler_ResolveLink(t *testing.T) {
	shareUC := mockUsecase.NewMockShareUsecase(t)
	h := NewShareHandler(ShareHandlerParams{ShareUC: shareUC})
	shareUC.EXPECT().ResolveLink(mock.Anything, "https://example.com").
		Return(nil, domainerrors.ErrInvalidArgument.WithDetails("not a product link")).Once()

	c, rec := newTestContext(http.MethodGet, "/api/v1/share/resolve?link=https%3A%2F%2Fexample.com", "")

	require.NoError(t, h.ResolveLink(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShareHandler_ResolveLink_Missing(t *testing.T) {
	h := NewShareHandler(ShareHandlerParams{ShareUC: mockUsecase.NewMockShareUsecase(t)})

	c, rec := newTestContext(http.MethodGet, "/api/v1/share/resolve", "")

	require.NoError(t, h.ResolveLink(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
