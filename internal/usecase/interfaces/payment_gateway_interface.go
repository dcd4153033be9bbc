package interfaces

import (
	"context"
	"errors"
	"net/http"
	"offer_agent/internal/domain/entities"
)

// Provider-neutral gateway failures. Implementations wrap their SDK errors
// with these so callers can map them without knowing the provider.
var (
	ErrGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrInvalidWebhookSignature = errors.New("invalid webhook signature")
	ErrUnsupportedCheckoutMode = errors.New("checkout mode not supported by payment provider")
)

// IPaymentGateway abstracts external payment providers (Stripe, Mercado Pago).
//
// The offer service uses it to open hosted checkouts and to turn signed
// webhook deliveries into provider-neutral events.
type IPaymentGateway interface {
	Provider() string
	CreateCheckoutSession(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error)
	ParseWebhookEvent(ctx context.Context, payload []byte, headers http.Header) (entities.WebhookEvent, error)
	GetSubscription(ctx context.Context, subscriptionID string) (entities.ProviderSubscription, error)
	GetCustomerEmail(ctx context.Context, customerID string) (string, error)
}
