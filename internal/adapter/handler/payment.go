package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	paymentDTO "github.com/johnquangdev/transcrypt/internal/adapter/dto/payment"
	"github.com/johnquangdev/transcrypt/internal/adapter/presenter"
	"github.com/johnquangdev/transcrypt/internal/domain/entities"
)

// PaymentService is what the donation endpoints need from the payment usecase
type PaymentService interface {
	Options() []entities.DonationOption
	Currency() string
	CreateIntent(ctx context.Context, amount int64, currency string) (*entities.PaymentIntent, error)
}

// Payment proxies donation payments
type Payment struct {
	payments PaymentService
	logger   *zap.Logger
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(payments PaymentService, logger *zap.Logger) *Payment {
	return &Payment{
		payments: payments,
		logger:   logger,
	}
}

// Options handles GET /payments/options
// @Summary      Donation options
// @Tags         Payments
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=payment.DonationOptionsResponse}
// @Router       /payments/options [get]
func (h *Payment) Options(c echo.Context) error {
	return HandleSuccess(h.logger, c, presenter.ToDonationOptionsResponse(h.payments.Currency(), h.payments.Options()))
}

// CreateIntent handles POST /payments/intents
// @Summary      Create a payment intent
// @Description  Creates a payment intent for a donation; processor errors keep their HTTP status
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Param        request  body      payment.CreateIntentRequest  true  "Amount in minor units"
// @Success      201      {object}  common.SuccessResponse{data=payment.PaymentIntentResponse}
// @Failure      400      {object}  common.ErrorResponse  "Invalid amount"
// @Failure      503      {object}  common.ErrorResponse  "Payments are not configured"
// @Router       /payments/intents [post]
func (h *Payment) CreateIntent(c echo.Context) error {
	var req paymentDTO.CreateIntentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	intent, err := h.payments.CreateIntent(c.Request().Context(), req.Amount, req.Currency)
	if err != nil {
		return HandleError(h.logger, c, toAppError(c, err))
	}

	return HandleCreated(h.logger, c, presenter.ToPaymentIntentResponse(intent))
}
