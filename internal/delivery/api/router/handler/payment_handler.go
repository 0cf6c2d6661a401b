package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/constants"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
}

// PaymentHandler creates payment intents for the mobile payment sheet.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{paymentUC: params.PaymentUC}
}

// CreatePaymentIntentRequest represents an intent request in major currency units.
// Amount is validated by the payment usecase so a missing amount and a
// non-positive one fail the same way.
type CreatePaymentIntentRequest struct {
	Amount   *float64 `json:"amount"`
	Currency string   `json:"currency,omitempty" validate:"omitempty,len=3,alpha"`
}

// CreatePaymentIntent returns the client secret of a new payment intent
func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	var req CreatePaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.paymentUC.CreatePaymentIntent(c.Request().Context(), &usecase.CreatePaymentIntentInput{
		Amount:         req.Amount,
		Currency:       req.Currency,
		IdempotencyKey: c.Request().Header.Get(constants.HeaderIdempotencyKey),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// GetClientConfig returns what the payment sheet needs to start
func (h *PaymentHandler) GetClientConfig(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.paymentUC.ClientConfig(c.Request().Context()))
}
