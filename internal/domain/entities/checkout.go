package entities

import "time"

// Provider-neutral checkout and webhook types. Gateways translate their own
// SDK objects into these so the use cases never see a provider payload.

type CheckoutMode string

const (
	CheckoutModePayment      CheckoutMode = "payment"
	CheckoutModeSubscription CheckoutMode = "subscription"
)

// CheckoutSessionPlaceholder in a SuccessURL is replaced with the session id
// by the provider (or by the gateway when the provider does not).
const CheckoutSessionPlaceholder = "{CHECKOUT_SESSION_ID}"

// CheckoutRequest describes a hosted checkout to open at the payment provider.
type CheckoutRequest struct {
	Reference     string
	Mode          CheckoutMode
	AmountCents   int64
	Currency      string
	ProductName   string
	Description   string
	CustomerEmail string
	CustomerName  string
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]string
}

type CheckoutSession struct {
	ID         string
	URL        string
	CustomerID string
}

// Webhook event types understood by the service.
const (
	EventCheckoutSessionCompleted = "checkout.session.completed"
	EventSubscriptionUpdated      = "customer.subscription.updated"
	EventSubscriptionDeleted      = "customer.subscription.deleted"
)

// WebhookEvent is a verified provider notification.
type WebhookEvent struct {
	ID   string
	Type string

	// checkout.session.completed
	SessionID       string
	SessionMode     CheckoutMode
	PaymentIntentID string
	CustomerID      string
	SubscriptionID  string
	Metadata        map[string]string

	// customer.subscription.*
	Subscription *ProviderSubscription
}

// ProviderSubscription is the provider's view of a recurring plan.
type ProviderSubscription struct {
	ID               string
	CustomerID       string
	Status           string
	CurrentPeriodEnd time.Time
}
