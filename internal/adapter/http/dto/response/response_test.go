package response

import (
	"encoding/json"
	"testing"

	"offer_agent/internal/domain/entities"
	"offer_agent/internal/usecase"
)

func TestFromOfferDetails(t *testing.T) {
	t.Run("embeds property", func(t *testing.T) {
		res := FromOfferDetails(usecase.OfferDetails{
			Offer:    entities.Offer{ID: "off-1", PropertyID: "prop-1", Status: entities.OfferStatusGenerated},
			Property: entities.Property{ID: "prop-1", Address: "1 Main St"},
		})

		raw, err := json.Marshal(res)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var body map[string]any
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body["id"] != "off-1" || body["status"] != "GENERATED" {
			t.Fatalf("offer fields not flattened: %v", body)
		}
		prop, ok := body["property"].(map[string]any)
		if !ok || prop["address"] != "1 Main St" {
			t.Fatalf("unexpected property: %v", body["property"])
		}
	})

	t.Run("missing property is omitted", func(t *testing.T) {
		res := FromOfferDetails(usecase.OfferDetails{Offer: entities.Offer{ID: "off-1"}})
		if res.Property != nil {
			t.Fatalf("expected nil property, got %+v", res.Property)
		}
	})
}

func TestFromPayment(t *testing.T) {
	res := FromPayment(entities.Payment{ID: "pay-1", OfferID: "off-1", Status: entities.PaymentStatusCompleted})
	if res.PaymentID != "pay-1" || res.OfferID != "off-1" || res.Status != "COMPLETED" {
		t.Fatalf("unexpected response %+v", res)
	}
}

func TestFromCheckout(t *testing.T) {
	res := FromCheckout(usecase.CheckoutResult{URL: "https://checkout.stripe.com/c/pay/cs_1", SessionID: "cs_1"})
	if res.URL != "https://checkout.stripe.com/c/pay/cs_1" || res.SessionID != "cs_1" {
		t.Fatalf("unexpected response %+v", res)
	}
}
