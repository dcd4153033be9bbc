package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"offer_agent/internal/domain/entities"
	"offer_agent/internal/usecase/interfaces"
)

// MockGateway is used when PAYMENT_GATEWAY_MOCK is enabled. Checkouts
// succeed immediately and webhooks are accepted unsigned, in the shape
//
//	{"id":"evt_1","type":"checkout.session.completed","session_id":"cs_mock_1",
//	 "mode":"payment","customer_id":"cus_1","subscription_id":"","metadata":{}}
type MockGateway struct {
	provider string
}

var _ interfaces.IPaymentGateway = (*MockGateway)(nil)

func NewMockGateway(provider string) *MockGateway {
	log.Printf("[payment][gateway] mock mode enabled provider=%s", provider)
	return &MockGateway{provider: provider}
}

func (g *MockGateway) Provider() string { return g.provider }

func (g *MockGateway) CreateCheckoutSession(_ context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
	id := "cs_mock_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	url := strings.ReplaceAll(req.SuccessURL, entities.CheckoutSessionPlaceholder, id)
	log.Printf("[payment][gateway] mock checkout success reference=%s session_id=%s", req.Reference, id)
	return entities.CheckoutSession{ID: id, URL: url, CustomerID: "cus_mock_" + req.CustomerEmail}, nil
}

type mockEvent struct {
	ID               string            `json:"id"`
	Type             string            `json:"type"`
	SessionID        string            `json:"session_id"`
	Mode             string            `json:"mode"`
	PaymentIntentID  string            `json:"payment_intent_id"`
	CustomerID       string            `json:"customer_id"`
	SubscriptionID   string            `json:"subscription_id"`
	Status           string            `json:"status"`
	CurrentPeriodEnd int64             `json:"current_period_end"`
	Metadata         map[string]string `json:"metadata"`
}

func (g *MockGateway) ParseWebhookEvent(_ context.Context, payload []byte, _ http.Header) (entities.WebhookEvent, error) {
	var m mockEvent
	if err := json.Unmarshal(payload, &m); err != nil {
		return entities.WebhookEvent{}, fmt.Errorf("%w: %v", interfaces.ErrGatewayBadRequest, err)
	}
	ev := entities.WebhookEvent{
		ID:              m.ID,
		Type:            m.Type,
		SessionID:       m.SessionID,
		SessionMode:     entities.CheckoutMode(m.Mode),
		PaymentIntentID: m.PaymentIntentID,
		CustomerID:      m.CustomerID,
		SubscriptionID:  m.SubscriptionID,
		Metadata:        m.Metadata,
	}
	if m.Type == entities.EventSubscriptionUpdated || m.Type == entities.EventSubscriptionDeleted {
		ps := mockSubscription(m.SubscriptionID, m.CustomerID, m.Status, m.CurrentPeriodEnd)
		ev.Subscription = &ps
	}
	return ev, nil
}

func (g *MockGateway) GetSubscription(_ context.Context, subscriptionID string) (entities.ProviderSubscription, error) {
	return mockSubscription(subscriptionID, "", "active", 0), nil
}

func (g *MockGateway) GetCustomerEmail(_ context.Context, customerID string) (string, error) {
	return strings.TrimPrefix(customerID, "cus_mock_"), nil
}

func mockSubscription(id, customerID, status string, periodEnd int64) entities.ProviderSubscription {
	end := time.Now().UTC().AddDate(0, 1, 0)
	if periodEnd > 0 {
		end = time.Unix(periodEnd, 0).UTC()
	}
	if status == "" {
		status = "active"
	}
	return entities.ProviderSubscription{ID: id, CustomerID: customerID, Status: status, CurrentPeriodEnd: end}
}
