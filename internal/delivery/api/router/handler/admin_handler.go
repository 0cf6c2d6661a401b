package handler

import (
	"io"
	"net/http"
	"strings"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	imageFormField = "image"
	maxImageSize   = 5 << 20
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
}

// AdminHandler backs the admin dashboard.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{adminUC: params.AdminUC}
}

// CreateProductRequest represents the multipart form of a new product
type CreateProductRequest struct {
	Name          string  `form:"name" validate:"required,max=200"`
	Description   string  `form:"description" validate:"max=5000"`
	CategoryID    string  `form:"categoryId" validate:"required"`
	SubCategoryID string  `form:"subCategoryId"`
	Brand         string  `form:"brand" validate:"max=100"`
	Price         float64 `form:"price" validate:"gte=0"`
	CountInStock  int     `form:"countInStock" validate:"gte=0"`
	IsDeal        bool    `form:"isDeal"`
}

// ListProducts returns the whole catalog
func (h *AdminHandler) ListProducts(c echo.Context) error {
	return renderListing(c, h.adminUC.ListProducts(c.Request().Context()))
}

// ListUsers returns every user profile
func (h *AdminHandler) ListUsers(c echo.Context) error {
	return renderListing(c, h.adminUC.ListUsers(c.Request().Context()))
}

// renderListing answers 503 for a failed fetch so clients can tell it from an
// empty collection.
func renderListing[T any](c echo.Context, listing entity.Listing[T]) error {
	if listing.State == entity.ListingFailed {
		return response.ServiceUnavailable(c, "LISTING_FAILED", listing.Error)
	}

	return response.Success(c, http.StatusOK, listing)
}

// CreateProduct adds a product with an optional image
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	image, err := readImage(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_IMAGE", err.Error())
	}

	product, err := h.adminUC.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		Name:          req.Name,
		Description:   req.Description,
		CategoryID:    req.CategoryID,
		SubCategoryID: req.SubCategoryID,
		Brand:         req.Brand,
		Price:         req.Price,
		CountInStock:  req.CountInStock,
		IsDeal:        req.IsDeal,
		Image:         image,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// readImage returns nil when the form carries no image.
func readImage(c echo.Context) (*usecase.ImageUpload, error) {
	header, err := c.FormFile(imageFormField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read image part")
	}
	if header.Size > maxImageSize {
		return nil, errors.Errorf("image exceeds %s", util.FormatBytes(maxImageSize))
	}

	file, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open image part")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "read image part")
	}
	if len(data) > maxImageSize {
		return nil, errors.Errorf("image exceeds %s", util.FormatBytes(maxImageSize))
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, errors.Errorf("unsupported image type %s", contentType)
	}

	return &usecase.ImageUpload{
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
