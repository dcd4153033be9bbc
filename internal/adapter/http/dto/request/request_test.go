package request

import "testing"

func TestPropertyExtractRequest_ResolveURL(t *testing.T) {
	r := PropertyExtractRequest{URL: "  https://www.zillow.com/homedetails/1  "}
	if got := r.ResolveURL(); got != "https://www.zillow.com/homedetails/1" {
		t.Fatalf("unexpected url %q", got)
	}
}

func TestOfferCreateRequest_ToInput(t *testing.T) {
	r := OfferCreateRequest{
		PropertyID:          " prop-1 ",
		FinancingType:       " Conventional ",
		OfferPrice:          445000,
		TimelinePreferences: map[string]any{"closingDate": "2026-12-01"},
		BuyerEmail:          " jane@example.com ",
	}

	in := r.ToInput()
	if in.PropertyID != "prop-1" || in.FinancingType != "Conventional" || in.BuyerEmail != "jane@example.com" {
		t.Fatalf("fields not trimmed: %+v", in)
	}
	if in.OfferPrice != 445000 {
		t.Fatalf("unexpected price %v", in.OfferPrice)
	}
	if in.TimelinePreferences["closingDate"] != "2026-12-01" {
		t.Fatalf("timeline not carried: %+v", in.TimelinePreferences)
	}
}

func TestCheckoutRequest_ToInput(t *testing.T) {
	in := CheckoutRequest{OfferID: " off-1 ", PaymentType: "SINGLE_DOWNLOAD", RequiresReview: true}.ToInput()
	if in.OfferID != "off-1" || in.PaymentType != "SINGLE_DOWNLOAD" || !in.RequiresReview {
		t.Fatalf("unexpected input %+v", in)
	}
}
