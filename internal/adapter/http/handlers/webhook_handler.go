package handlers

import (
	"errors"
	"log"
	"net/http"

	response "offer_agent/internal/adapter/http/dto/response"
	"offer_agent/internal/usecase"
	"offer_agent/pkg"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives payment provider notifications. The raw body is
// handed to the use case untouched because signatures are computed over it.
type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// Stripe godoc
// @Summary      Stripe webhook
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.WebhookResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /api/webhooks/stripe [post]
func (h *WebhookHandler) Stripe(c *gin.Context) {
	h.handle(c, "stripe")
}

// MercadoPago godoc
// @Summary      Mercado Pago webhook
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.WebhookResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /api/webhooks/mercadopago [post]
func (h *WebhookHandler) MercadoPago(c *gin.Context) {
	h.handle(c, "mercadopago")
}

func (h *WebhookHandler) handle(c *gin.Context, provider string) {
	payload, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] read body failed provider=%s err=%v", provider, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.Handle(c.Request.Context(), provider, payload, c.Request.Header); err != nil {
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.WebhookResponse{Received: true})
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWebhookSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid signature", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidWebhookPayload):
		return pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWebhookProviderNotConfigured):
		return pkg.NewDomainError("WEBHOOK_NOT_CONFIGURED", "Webhook secret not configured", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("WEBHOOK_PROCESSING_FAILED", "Webhook processing failed", err, http.StatusInternalServerError)
	}
}
