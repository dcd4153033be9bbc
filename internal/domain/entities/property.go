package entities

import (
	"fmt"
	"strings"
	"time"
)

const DefaultPropertyType = "singlefamily"

// Property is a listing the buyer wants to make an offer on.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (source_url-index): source_url
//   - GSI2 (address_key-index): address_key (see AddressKey)
//
// Optional listing facts are pointers so that "unknown" survives a round trip
// and can be filled later by a merge.
type Property struct {
	ID                string         `json:"id"`
	SourceURL         string         `json:"sourceUrl,omitempty"`
	SourceType        string         `json:"sourceType,omitempty"`
	MLSNumber         string         `json:"mlsNumber,omitempty"`
	Address           string         `json:"address"`
	City              string         `json:"city"`
	State             string         `json:"state"`
	ZipCode           string         `json:"zipCode"`
	Price             *float64       `json:"price,omitempty"`
	AIFairValue       *float64       `json:"aiFairValue,omitempty"`
	DaysOnMarket      *int           `json:"daysOnMarket,omitempty"`
	PropertyType      string         `json:"propertyType"`
	ListingAgentName  string         `json:"listingAgentName,omitempty"`
	ListingAgentEmail string         `json:"listingAgentEmail,omitempty"`
	ListingAgentPhone string         `json:"listingAgentPhone,omitempty"`
	OfferDeadline     *time.Time     `json:"offerDeadline,omitempty"`
	HasHOA            *bool          `json:"hasHOA,omitempty"`
	BuiltBefore1978   *bool          `json:"builtBefore1978,omitempty"`
	ExtractedData     map[string]any `json:"extractedData,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

// AddressKey normalizes the postal address into a single lookup key.
func (p Property) AddressKey() string {
	return AddressKey(p.Address, p.City, p.State, p.ZipCode)
}

func AddressKey(address, city, state, zip string) string {
	norm := func(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
	return fmt.Sprintf("%s|%s|%s|%s", norm(address), norm(city), norm(state), norm(zip))
}

// FullAddress renders "street, city, ST zip".
func (p Property) FullAddress() string {
	return fmt.Sprintf("%s, %s, %s %s", p.Address, p.City, p.State, p.ZipCode)
}

// IsCondo reports whether the property type falls in the condo template bucket.
func IsCondo(propertyType string) bool {
	t := strings.ToLower(propertyType)
	return strings.Contains(t, "condo")
}

// MergeMissing copies into p every listing fact that p does not know yet.
// Known values are never overwritten. Extracted data keys are merged with
// other winning.
func (p *Property) MergeMissing(other Property) {
	if p.Price == nil {
		p.Price = other.Price
	}
	if p.AIFairValue == nil {
		p.AIFairValue = other.AIFairValue
	}
	if p.DaysOnMarket == nil {
		p.DaysOnMarket = other.DaysOnMarket
	}
	if p.PropertyType == "" {
		p.PropertyType = other.PropertyType
	}
	if p.PropertyType == "" {
		p.PropertyType = DefaultPropertyType
	}
	if p.MLSNumber == "" {
		p.MLSNumber = other.MLSNumber
	}
	if p.ListingAgentName == "" {
		p.ListingAgentName = other.ListingAgentName
	}
	if p.ListingAgentEmail == "" {
		p.ListingAgentEmail = other.ListingAgentEmail
	}
	if p.ListingAgentPhone == "" {
		p.ListingAgentPhone = other.ListingAgentPhone
	}
	if p.OfferDeadline == nil {
		p.OfferDeadline = other.OfferDeadline
	}
	if p.HasHOA == nil {
		p.HasHOA = other.HasHOA
	}
	if p.BuiltBefore1978 == nil {
		p.BuiltBefore1978 = other.BuiltBefore1978
	}
	if len(other.ExtractedData) > 0 {
		if p.ExtractedData == nil {
			p.ExtractedData = map[string]any{}
		}
		for k, v := range other.ExtractedData {
			p.ExtractedData[k] = v
		}
	}
}
