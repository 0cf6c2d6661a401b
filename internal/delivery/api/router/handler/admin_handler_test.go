package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/delivery/api/validator"
	"storefront/internal/domain/entity"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func newMultipartContext(t *testing.T, fields map[string]string, filename string, image []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	if image != nil {
		part, err := writer.CreateFormFile("image", filename)
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/products", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAdminHandler_ListProducts(t *testing.T) {
	tests := []struct {
		name     string
		listing  entity.Listing[*entity.Product]
		wantCode int
		wantBody string
	}{
		{
			name:     "ready",
			listing:  entity.NewListing([]*entity.Product{{ID: uuid.New(), Name: "Boot"}}),
			wantCode: http.StatusOK,
			wantBody: `"state":"ready"`,
		},
		{
			name:     "empty",
			listing:  entity.NewListing[*entity.Product](nil),
			wantCode: http.StatusOK,
			wantBody: `"state":"empty"`,
		},
		{
			name:     "failed",
			listing:  entity.FailedListing[*entity.Product]("Failed to load products"),
			wantCode: http.StatusServiceUnavailable,
			wantBody: `"code":"LISTING_FAILED"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adminUC := mockUsecase.NewMockAdminUsecase(t)
			adminUC.EXPECT().ListProducts(mock.Anything).Return(tt.listing).Once()
			h := NewAdminHandler(AdminHandlerParams{AdminUC: adminUC})

			c, rec := newTestContext(http.MethodGet, "/admin/products", "")

			require.NoError(t, h.ListProducts(c))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestAdminHandler_ListUsers(t *testing.T) {
	adminUC := mockUsecase.NewMockAdminUsecase(t)
	adminUC.EXPECT().ListUsers(mock.Anything).
		Return(entity.NewListing([]*entity.User{{ID: "uid-1", Addresses: []entity.Address{}}})).Once()
	h := NewAdminHandler(AdminHandlerParams{AdminUC: adminUC})

	c, rec := newTestContext(http.MethodGet, "/admin/users", "")

	require.NoError(t, h.ListUsers(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"uid-1"`)
}

func TestAdminHandler_CreateProduct_WithImage(t *testing.T) {
	adminUC := mockUsecase.NewMockAdminUsecase(t)
	h := NewAdminHandler(AdminHandlerParams{AdminUC: adminUC})

	adminUC.EXPECT().CreateProduct(mock.Anything, mock.MatchedBy(func(in *usecase.CreateProductInput) bool {
		return in.Name == "Boot" &&
			in.CategoryID == "c1" &&
			in.Price == 49.5 &&
			in.CountInStock == 3 &&
			in.IsDeal &&
			in.Image != nil &&
			in.Image.Filename == "boot.png" &&
			in.Image.ContentType == "image/png" &&
			bytes.Equal(in.Image.Data, pngHeader)
	})).Return(&entity.Product{ID: uuid.New(), Name: "Boot"}, nil).Once()

	c, rec := newMultipartContext(t, map[string]string{
		"name":         "Boot",
		"categoryId":   "c1",
		"price":        "49.5",
		"countInStock": "3",
		"isDeal":       "true",
	}, "boot.png", pngHeader)

	require.NoError(t, h.CreateProduct(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAdminHandler_CreateProduct_WithoutImage(t *testing.T) {
	adminUC := mockUsecase.NewMockAdminUsecase(t)
	h := NewAdminHandler(AdminHandlerParams{AdminUC: adminUC})

	adminUC.EXPECT().CreateProduct(mock.Anything, mock.MatchedBy(func(in *usecase.CreateProductInput) bool {
		return in.Image == nil
	})).Return(&entity.Product{ID: uuid.New(), Name: "Boot"}, nil).Once()

	c, rec := newMultipartContext(t, map[string]string{"name": "Boot", "categoryId": "c1", "price": "10"}, "", nil)

	require.NoError(t, h.CreateProduct(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAdminHandler_CreateProduct_RejectsNonImage(t *testing.T) {
	adminUC := mockUsecase.NewMockAdminUsecase(t)
	h := NewAdminHandler(AdminHandlerParams{AdminUC: adminUC})

	c, rec := newMultipartContext(t, map[string]string{"name": "Boot", "categoryId": "c1"}, "notes.txt", []byte("plain text"))

	require.NoError(t, h.CreateProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	adminUC.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
}

func TestAdminHandler_CreateProduct_MissingName(t *testing.T) {
	adminUC := mockUsecase.NewMockAdminUsecase(t)
	h := NewAdminHandler(AdminHandlerParams{AdminUC: adminUC})

	c, _ := newMultipartContext(t, map[string]string{"categoryId": "c1"}, "", nil)

	err := h.CreateProduct(c)
	require.Error(t, err)
	assert.Equal(t, "Name", validator.Details(err)[0].Field)
}
