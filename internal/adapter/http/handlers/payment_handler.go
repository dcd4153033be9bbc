package handlers

import (
	"errors"
	"log"
	"net/http"

	request "offer_agent/internal/adapter/http/dto/request"
	response "offer_agent/internal/adapter/http/dto/response"
	"offer_agent/internal/usecase"
	"offer_agent/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "offer_id and payment_type are required", http.StatusBadRequest)
)

// PaymentHandler handles checkout creation and verification.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreateCheckout godoc
// @Summary      Open a hosted checkout for an offer
// @Tags         payment
// @Accept       json
// @Produce      json
// @Param        body  body      request.CheckoutRequest  true  "Checkout"
// @Success      200   {object}  response.CheckoutResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /api/payment/create-checkout [post]
func (h *PaymentHandler) CreateCheckout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload err=%v", err)
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] checkout start offer_id=%s payment_type=%s requires_review=%t", payload.OfferID, payload.PaymentType, payload.RequiresReview)

	res, err := h.usecase.CreateCheckout(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[payment][handler] checkout failed offer_id=%s err=%v", payload.OfferID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] checkout success offer_id=%s session_id=%s", payload.OfferID, res.SessionID)

	c.JSON(http.StatusOK, response.FromCheckout(res))
}

// VerifyPayment godoc
// @Summary      Look up the payment behind a checkout session
// @Tags         payment
// @Produce      json
// @Param        session_id  query     string  true  "Checkout session ID"
// @Success      200         {object}  response.PaymentVerifyResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Router       /api/payment/verify [get]
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	sessionID := c.Query("session_id")

	p, err := h.usecase.Verify(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("[payment][handler] verify failed session_id=%s err=%v", sessionID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(p))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCheckoutInput), errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentType), errors.Is(err, usecase.ErrUnsupportedPaymentType):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_TYPE", "Invalid payment type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOfferNotFound):
		return pkg.NewDomainErrorSimple("OFFER_NOT_FOUND", "Offer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayAuth):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrPaymentGatewayNotSet):
		return pkg.NewDomainError("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
