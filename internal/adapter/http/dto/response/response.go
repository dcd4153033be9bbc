package response

import (
	"offer_agent/internal/domain/entities"
	"offer_agent/internal/usecase"
)

type PropertyCreatedResponse struct {
	PropertyID string `json:"propertyId"`
}

type OfferCreatedResponse struct {
	OfferID string `json:"offerId"`
}

type CheckoutResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

type PaymentVerifyResponse struct {
	PaymentID string `json:"payment_id"`
	OfferID   string `json:"offer_id"`
	Status    string `json:"status"`
}

type WebhookResponse struct {
	Received bool `json:"received"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type BannerResponse struct {
	Message string `json:"message"`
}

// OfferResponse is an offer together with the property it targets.
type OfferResponse struct {
	entities.Offer
	Property *entities.Property `json:"property,omitempty"`
}

func FromOfferDetails(d usecase.OfferDetails) OfferResponse {
	res := OfferResponse{Offer: d.Offer}
	if d.Property.ID != "" {
		p := d.Property
		res.Property = &p
	}
	return res
}

func FromCheckout(r usecase.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{URL: r.URL, SessionID: r.SessionID}
}

func FromPayment(p entities.Payment) PaymentVerifyResponse {
	return PaymentVerifyResponse{PaymentID: p.ID, OfferID: p.OfferID, Status: string(p.Status)}
}
