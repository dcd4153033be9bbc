package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"offer_agent/internal/domain/entities"
	"offer_agent/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const ProviderStripe = "stripe"

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")

// StripeGateway opens Stripe Checkout sessions and verifies Stripe webhooks.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(secretKey, webhookSecret string) (*StripeGateway, error) {
	if secretKey == "" {
		log.Printf("[payment][gateway] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}
	api := &client.API{}
	api.Init(secretKey, nil)
	log.Printf("[payment][gateway] Stripe client initialized")
	return &StripeGateway{api: api, webhookSecret: webhookSecret}, nil
}

func (g *StripeGateway) Provider() string { return ProviderStripe }

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
	log.Printf("[payment][gateway] stripe checkout start reference=%s mode=%s amount=%d", req.Reference, req.Mode, req.AmountCents)

	customerID, err := g.findOrCreateCustomer(ctx, req.CustomerEmail, req.CustomerName)
	if err != nil {
		log.Printf("[payment][gateway] stripe customer failed reference=%s err=%v", req.Reference, err)
		return entities.CheckoutSession{}, mapStripeError(err)
	}

	priceData := &stripe.CheckoutSessionLineItemPriceDataParams{
		Currency: stripe.String(req.Currency),
		ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(req.ProductName),
		},
		UnitAmount: stripe.Int64(req.AmountCents),
	}
	if req.Description != "" {
		priceData.ProductData.Description = stripe.String(req.Description)
	}
	if req.Mode == entities.CheckoutModeSubscription {
		priceData.Recurring = &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
			Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
		}
	}

	params := &stripe.CheckoutSessionParams{
		Customer:          stripe.String(customerID),
		Mode:              stripe.String(string(req.Mode)),
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		ClientReferenceID: stripe.String(req.Reference),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{PriceData: priceData, Quantity: stripe.Int64(1)},
		},
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		log.Printf("[payment][gateway] stripe checkout failed reference=%s err=%v", req.Reference, err)
		return entities.CheckoutSession{}, mapStripeError(err)
	}
	log.Printf("[payment][gateway] stripe checkout success reference=%s session_id=%s", req.Reference, s.ID)
	return entities.CheckoutSession{ID: s.ID, URL: s.URL, CustomerID: customerID}, nil
}

// findOrCreateCustomer reuses the first Stripe customer with this email.
func (g *StripeGateway) findOrCreateCustomer(ctx context.Context, email, name string) (string, error) {
	list := &stripe.CustomerListParams{Email: stripe.String(email)}
	list.Limit = stripe.Int64(1)
	list.Context = ctx
	it := g.api.Customers.List(list)
	if it.Next() {
		return it.Customer().ID, nil
	}
	if err := it.Err(); err != nil {
		return "", err
	}

	params := &stripe.CustomerParams{Email: stripe.String(email)}
	if name != "" {
		params.Name = stripe.String(name)
	}
	params.Context = ctx
	c, err := g.api.Customers.New(params)
	if err != nil {
		return "", err
	}
	log.Printf("[payment][gateway] stripe customer created customer_id=%s", c.ID)
	return c.ID, nil
}

func (g *StripeGateway) ParseWebhookEvent(_ context.Context, payload []byte, headers http.Header) (entities.WebhookEvent, error) {
	if g.webhookSecret == "" {
		log.Printf("[payment][gateway] missing STRIPE_WEBHOOK_SECRET")
		return entities.WebhookEvent{}, interfaces.ErrGatewayNotConfigured
	}
	event, err := webhook.ConstructEventWithOptions(payload, headers.Get("Stripe-Signature"), g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		log.Printf("[payment][gateway] stripe signature check failed err=%v", err)
		return entities.WebhookEvent{}, fmt.Errorf("%w: %v", interfaces.ErrInvalidWebhookSignature, err)
	}
	return stripeEventToWebhookEvent(event)
}

func stripeEventToWebhookEvent(event stripe.Event) (entities.WebhookEvent, error) {
	out := entities.WebhookEvent{ID: event.ID, Type: string(event.Type)}
	if event.Data == nil {
		return out, nil
	}

	switch out.Type {
	case entities.EventCheckoutSessionCompleted:
		var s stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
			return entities.WebhookEvent{}, fmt.Errorf("decode checkout session: %w", err)
		}
		out.SessionID = s.ID
		out.SessionMode = entities.CheckoutMode(s.Mode)
		out.Metadata = s.Metadata
		if s.PaymentIntent != nil {
			out.PaymentIntentID = s.PaymentIntent.ID
		}
		if s.Customer != nil {
			out.CustomerID = s.Customer.ID
		}
		if s.Subscription != nil {
			out.SubscriptionID = s.Subscription.ID
		}
	case entities.EventSubscriptionUpdated, entities.EventSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return entities.WebhookEvent{}, fmt.Errorf("decode subscription: %w", err)
		}
		ps := fromStripeSubscription(&sub)
		out.Subscription = &ps
		out.SubscriptionID = sub.ID
		out.CustomerID = ps.CustomerID
	}
	return out, nil
}

func (g *StripeGateway) GetSubscription(ctx context.Context, subscriptionID string) (entities.ProviderSubscription, error) {
	params := &stripe.SubscriptionParams{}
	params.Context = ctx
	sub, err := g.api.Subscriptions.Get(subscriptionID, params)
	if err != nil {
		return entities.ProviderSubscription{}, mapStripeError(err)
	}
	return fromStripeSubscription(sub), nil
}

func (g *StripeGateway) GetCustomerEmail(ctx context.Context, customerID string) (string, error) {
	params := &stripe.CustomerParams{}
	params.Context = ctx
	c, err := g.api.Customers.Get(customerID, params)
	if err != nil {
		return "", mapStripeError(err)
	}
	return c.Email, nil
}

func fromStripeSubscription(sub *stripe.Subscription) entities.ProviderSubscription {
	ps := entities.ProviderSubscription{
		ID:     sub.ID,
		Status: string(sub.Status),
	}
	if sub.CurrentPeriodEnd > 0 {
		ps.CurrentPeriodEnd = time.Unix(sub.CurrentPeriodEnd, 0).UTC()
	}
	if sub.Customer != nil {
		ps.CustomerID = sub.Customer.ID
	}
	return ps
}

func mapStripeError(err error) error {
	var se *stripe.Error
	if !errors.As(err, &se) {
		return err
	}
	switch {
	case se.HTTPStatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", interfaces.ErrGatewayUnauthorized, se.Msg)
	case se.HTTPStatusCode >= 400 && se.HTTPStatusCode < 500:
		return fmt.Errorf("%w: %s", interfaces.ErrGatewayBadRequest, se.Msg)
	}
	return err
}
