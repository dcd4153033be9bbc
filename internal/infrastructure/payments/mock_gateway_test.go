package payments

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"offer_agent/internal/config"
	"offer_agent/internal/domain/entities"
)

func TestMockGateway(t *testing.T) {
	g := NewMockGateway("stripe")

	s, err := g.CreateCheckoutSession(context.Background(), entities.CheckoutRequest{
		SuccessURL:    "http://app/payment/success?session_id={CHECKOUT_SESSION_ID}",
		CustomerEmail: "buyer@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(s.ID, "cs_mock_") || !strings.HasSuffix(s.URL, s.ID) {
		t.Fatalf("unexpected session %+v", s)
	}
	email, _ := g.GetCustomerEmail(context.Background(), s.CustomerID)
	if email != "buyer@example.com" {
		t.Fatalf("unexpected email %q", email)
	}

	ev, err := g.ParseWebhookEvent(context.Background(), []byte(`{"id":"evt_1","type":"customer.subscription.deleted","subscription_id":"sub_1","status":"canceled"}`), http.Header{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Subscription == nil || ev.Subscription.Status != "canceled" {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestNewGateway(t *testing.T) {
	t.Run("mock", func(t *testing.T) {
		g, err := NewGateway(config.Config{PaymentGatewayMock: true, PaymentProvider: "mercadopago"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.Provider() != "mercadopago" {
			t.Fatalf("unexpected provider %q", g.Provider())
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		if _, err := NewGateway(config.Config{PaymentProvider: "paypal"}); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("stripe without key", func(t *testing.T) {
		if _, err := NewGateway(config.Config{PaymentProvider: "stripe"}); err == nil {
			t.Fatalf("expected error")
		}
	})
}
