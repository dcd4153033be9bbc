package request

import (
	"strings"

	"offer_agent/internal/usecase"
)

// CheckoutRequest is the body of POST /api/payment/create-checkout.
type CheckoutRequest struct {
	OfferID        string `json:"offer_id" binding:"required"`
	PaymentType    string `json:"payment_type" binding:"required"`
	RequiresReview bool   `json:"requires_review"`
}

func (r CheckoutRequest) ToInput() usecase.CheckoutInput {
	return usecase.CheckoutInput{
		OfferID:        strings.TrimSpace(r.OfferID),
		PaymentType:    strings.TrimSpace(r.PaymentType),
		RequiresReview: r.RequiresReview,
	}
}
