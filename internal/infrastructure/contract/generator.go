package contract

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"offer_agent/internal/domain/entities"
	"offer_agent/internal/usecase/interfaces"
)

var ErrTemplateNotFound = errors.New("contract template not found")

const defaultEarnestMoney = 1000

// OfferData is the flat view of an offer that gets written into a contract.
type OfferData struct {
	PropertyAddress   string
	City              string
	State             string
	ZipCode           string
	OfferPrice        float64
	ClosingDate       string
	FinancingType     string
	BuyerName         string
	BuyerEmail        string
	BuyerPhone        string
	MLSNumber         string
	ListingAgentName  string
	ListingAgentEmail string
	ListingAgentPhone string
	SellerCredits     float64
	EarnestMoney      float64
	AdditionalNotes   string
}

func NewOfferData(offer entities.Offer, property entities.Property, buyer entities.User) OfferData {
	d := OfferData{
		PropertyAddress:   property.Address,
		City:              property.City,
		State:             property.State,
		ZipCode:           property.ZipCode,
		OfferPrice:        offer.OfferPrice,
		ClosingDate:       offer.ClosingDate(),
		FinancingType:     offer.FinancingType,
		BuyerName:         buyer.Name,
		BuyerEmail:        buyer.Email,
		BuyerPhone:        buyer.Phone,
		MLSNumber:         property.MLSNumber,
		ListingAgentName:  property.ListingAgentName,
		ListingAgentEmail: property.ListingAgentEmail,
		ListingAgentPhone: property.ListingAgentPhone,
		EarnestMoney:      defaultEarnestMoney,
		AdditionalNotes:   offer.AdditionalNotes,
	}
	if credits, ok := offer.SellerCredits(); ok {
		d.SellerCredits = credits
	}
	if em, ok := offer.Contingencies["earnestMoney"].(float64); ok && em > 0 {
		d.EarnestMoney = em
	}
	return d
}

// Values returns the logical field values keyed as in the field map.
func (d OfferData) Values() map[string]string {
	v := map[string]string{
		"property_address":    fmt.Sprintf("%s, %s, %s %s", d.PropertyAddress, d.City, d.State, d.ZipCode),
		"street_address":      d.PropertyAddress,
		"city":                d.City,
		"state":               d.State,
		"zip_code":            d.ZipCode,
		"offer_price":         FormatMoney(d.OfferPrice),
		"financing_type":      d.FinancingType,
		"buyer_name":          d.BuyerName,
		"buyer_email":         d.BuyerEmail,
		"buyer_phone":         d.BuyerPhone,
		"mls_number":          d.MLSNumber,
		"listing_agent_name":  d.ListingAgentName,
		"listing_agent_email": d.ListingAgentEmail,
		"listing_agent_phone": d.ListingAgentPhone,
		"additional_notes":    d.AdditionalNotes,
	}
	if d.ClosingDate != "" {
		v["closing_date"] = FormatClosingDate(d.ClosingDate)
	}
	if d.SellerCredits != 0 {
		v["seller_credits"] = FormatMoney(d.SellerCredits)
	}
	if d.EarnestMoney != 0 {
		v["earnest_money"] = FormatMoney(d.EarnestMoney)
	}
	return v
}

// Generator fills state contract templates found under TemplatesDir.
type Generator struct {
	TemplatesDir string
	Specs        []FieldSpec
	Opener       Opener
}

var _ interfaces.IOfferDocumentGenerator = (*Generator)(nil)

func NewGenerator(templatesDir string, specs []FieldSpec) *Generator {
	if specs == nil {
		specs = DefaultFieldSpecs()
	}
	return &Generator{TemplatesDir: templatesDir, Specs: specs, Opener: PDFOpener{}}
}

func (g *Generator) Generate(_ context.Context, offer entities.Offer, property entities.Property, buyer entities.User) ([]byte, error) {
	path := TemplatePath(g.TemplatesDir, property.State, property.PropertyType)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}

	doc, err := g.Opener.Open(data)
	if err != nil {
		return nil, err
	}

	filled := Fill(doc, NewOfferData(offer, property, buyer).Values(), g.Specs)
	log.Printf("[contract][generator] template=%s offer_id=%s fields=%d", path, offer.ID, filled)

	if err := doc.Lock(); err != nil {
		return nil, err
	}
	return doc.Bytes()
}
