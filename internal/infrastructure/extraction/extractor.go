package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"offer_agent/internal/domain/entities"
	"offer_agent/internal/usecase/interfaces"
)

var (
	ErrLLMNotConfigured = errors.New("GOOGLE_AI_API_KEY or GEMINI_API_KEY is not set")
	ErrLLMUnreachable   = errors.New("LLM could not access the property URL")
	ErrPageUnavailable  = errors.New("could not fetch property page")
	ErrInvalidLLMJSON   = errors.New("failed to parse LLM response as JSON")
)

const (
	addressNotFound = "Address not found"
	cityNotFound    = "City not found"
	stateNotFound   = "State not found"
	zipNotFound     = "Zip not found"
)

type pageFetcher interface {
	FetchText(ctx context.Context, listingURL string) (string, error)
}

// Extractor reads a listing page and asks the LLM to structure it.
type Extractor struct {
	fetcher pageFetcher
	llm     TextGenerator
}

var _ interfaces.IPropertyExtractor = (*Extractor)(nil)

// NewExtractor accepts a nil llm; Extract then fails with ErrLLMNotConfigured.
func NewExtractor(fetcher pageFetcher, llm TextGenerator) *Extractor {
	return &Extractor{fetcher: fetcher, llm: llm}
}

func (e *Extractor) Extract(ctx context.Context, listingURL string) (entities.Property, error) {
	if e.llm == nil {
		return entities.Property{}, ErrLLMNotConfigured
	}

	text, fetchErr := e.fetcher.FetchText(ctx, listingURL)
	prompt := pagePrompt(listingURL, text)
	if fetchErr != nil || text == "" {
		log.Printf("[property][extractor] direct fetch failed, url only url=%s error=%v", listingURL, fetchErr)
		prompt = urlOnlyPrompt(listingURL)
	}

	raw, err := e.llm.GenerateText(ctx, prompt)
	if err != nil {
		return entities.Property{}, fmt.Errorf("extract property: %w", err)
	}

	p, err := ParseExtraction(raw)
	if err != nil {
		return entities.Property{}, err
	}
	if fetchErr != nil && p.Address == addressNotFound {
		return entities.Property{}, fmt.Errorf("%w: %v", ErrPageUnavailable, fetchErr)
	}

	p.SourceURL = listingURL
	p.SourceType = SourceType(listingURL)
	return p, nil
}

// ParseExtraction converts the LLM JSON answer into a Property. Values of the
// wrong JSON type are dropped.
func ParseExtraction(raw string) (entities.Property, error) {
	var data map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &data); err != nil {
		return entities.Property{}, fmt.Errorf("%w: %v", ErrInvalidLLMJSON, err)
	}
	if msg := str(data, "error"); msg != "" {
		return entities.Property{}, fmt.Errorf("%w: %s", ErrLLMUnreachable, msg)
	}

	p := entities.Property{
		Address:           orDefault(str(data, "address"), addressNotFound),
		City:              orDefault(str(data, "city"), cityNotFound),
		State:             orDefault(str(data, "state"), stateNotFound),
		ZipCode:           orDefault(str(data, "zipCode"), zipNotFound),
		Price:             num(data, "price"),
		AIFairValue:       num(data, "aiFairValue"),
		DaysOnMarket:      integer(data, "daysOnMarket"),
		MLSNumber:         str(data, "mlsNumber"),
		ListingAgentName:  str(data, "listingAgentName"),
		ListingAgentEmail: str(data, "listingAgentEmail"),
		ListingAgentPhone: str(data, "listingAgentPhone"),
		HasHOA:            boolean(data, "hasHOA"),
		BuiltBefore1978:   boolean(data, "builtBefore1978"),
		PropertyType:      orDefault(str(data, "propertyType"), entities.DefaultPropertyType),
		ExtractedData: map[string]any{
			"bedrooms":    data["bedrooms"],
			"bathrooms":   data["bathrooms"],
			"square_feet": data["squareFeet"],
			"lot_size":    data["lotSize"],
			"year_built":  data["yearBuilt"],
		},
	}
	if d := str(data, "offerDeadline"); d != "" {
		if t, ok := parseDeadline(d); ok {
			p.OfferDeadline = &t
		}
	}
	return p, nil
}

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

func num(m map[string]any, key string) *float64 {
	f, ok := m[key].(float64)
	if !ok {
		return nil
	}
	return &f
}

func integer(m map[string]any, key string) *int {
	f, ok := m[key].(float64)
	if !ok || f != math.Trunc(f) {
		return nil
	}
	i := int(f)
	return &i
}

func boolean(m map[string]any, key string) *bool {
	b, ok := m[key].(bool)
	if !ok {
		return nil
	}
	return &b
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func parseDeadline(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
