package routes

import (
	"offer_agent/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProperty = "/property"
	PathOffer    = "/offer"
	PathPayment  = "/payment"
	PathWebhooks = "/webhooks"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}

func addPropertyRoutes(rg *gin.RouterGroup, h *handlers.PropertyHandler) {
	property := rg.Group(PathProperty)
	{
		property.POST("/extract", h.ExtractProperty)
		property.GET("/:property_id", h.GetProperty)
	}
}

func addOfferRoutes(rg *gin.RouterGroup, h *handlers.OfferHandler) {
	offer := rg.Group(PathOffer)
	{
		offer.POST("/create", h.CreateOffer)
		offer.GET("/:offer_id", h.GetOffer)
		offer.GET("/:offer_id/download", h.DownloadOffer)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	payment := rg.Group(PathPayment)
	{
		payment.POST("/create-checkout", h.CreateCheckout)
		payment.GET("/verify", h.VerifyPayment)
	}
}

func addWebhookRoutes(rg *gin.RouterGroup, h *handlers.WebhookHandler) {
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/stripe", h.Stripe)
		webhooks.POST("/mercadopago", h.MercadoPago)
	}
}
