package request

import (
	"strings"

	"offer_agent/internal/usecase"
)

// OfferCreateRequest is the offer form sent by the frontend.
//
// The property is referenced by propertyId when it was extracted from a
// listing, otherwise it is described by its address fields.
type OfferCreateRequest struct {
	PropertyID          string         `json:"propertyId"`
	Address             string         `json:"address"`
	City                string         `json:"city"`
	State               string         `json:"state"`
	ZipCode             string         `json:"zipCode"`
	PropertyType        string         `json:"propertyType"`
	FinancingType       string         `json:"financingType" binding:"required"`
	OfferPrice          float64        `json:"offerPrice" binding:"required"`
	Contingencies       map[string]any `json:"contingencies"`
	TimelinePreferences map[string]any `json:"timelinePreferences"`
	Concessions         map[string]any `json:"concessions"`
	AdditionalNotes     string         `json:"additionalNotes"`
	BuyerName           string         `json:"buyerName"`
	BuyerEmail          string         `json:"buyerEmail"`
	BuyerPhone          string         `json:"buyerPhone"`
}

func (r OfferCreateRequest) ToInput() usecase.CreateOfferInput {
	return usecase.CreateOfferInput{
		PropertyID:          strings.TrimSpace(r.PropertyID),
		Address:             strings.TrimSpace(r.Address),
		City:                strings.TrimSpace(r.City),
		State:               strings.TrimSpace(r.State),
		ZipCode:             strings.TrimSpace(r.ZipCode),
		PropertyType:        strings.TrimSpace(r.PropertyType),
		FinancingType:       strings.TrimSpace(r.FinancingType),
		OfferPrice:          r.OfferPrice,
		Contingencies:       r.Contingencies,
		TimelinePreferences: r.TimelinePreferences,
		Concessions:         r.Concessions,
		AdditionalNotes:     r.AdditionalNotes,
		BuyerName:           strings.TrimSpace(r.BuyerName),
		BuyerEmail:          strings.TrimSpace(r.BuyerEmail),
		BuyerPhone:          strings.TrimSpace(r.BuyerPhone),
	}
}
