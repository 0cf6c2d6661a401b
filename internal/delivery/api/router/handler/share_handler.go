package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShareHandlerParams holds dependencies for ShareHandler, injected by Fx.
type ShareHandlerParams struct {
	fx.In

	ShareUC usecase.ShareUsecase
}

// ShareHandler builds and resolves product share links.
type ShareHandler struct {
	shareUC usecase.ShareUsecase
}

// NewShareHandler is the constructor for ShareHandler
func NewShareHandler(params ShareHandlerParams) *ShareHandler {
	return &ShareHandler{shareUC: params.ShareUC}
}

// ShareProduct returns the deep link and share message of a product
func (h *ShareHandler) ShareProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	link, err := h.shareUC.ShareProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, link)
}

// ShareQRCode returns the product deep link as a PNG QR code
func (h *ShareHandler) ShareQRCode(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	png, err := h.shareUC.ShareQRCode(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ResolveLink returns the product a scanned deep link points to
func (h *ShareHandler) ResolveLink(c echo.Context) error {
	link := c.QueryParam("link")
	if link == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'link' is required")
	}

	product, err := h.shareUC.ResolveLink(c.Request().Context(), link)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}
