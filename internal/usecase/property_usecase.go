package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"offer_agent/internal/domain/entities"
	"offer_agent/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPropertyNotFound  = errors.New("property not found")
	ErrInvalidListingURL = errors.New("url is required")
	ErrExtractionFailed  = errors.New("failed to extract property data")
	ErrInvalidPropertyID = errors.New("invalid property id")
)

// IPropertyUseCase turns listing URLs into stored properties.
//
// Extraction is idempotent per listing: a URL seen before returns the
// stored property without calling the extractor, and a new URL for a known
// address enriches that row instead of creating a duplicate.
type IPropertyUseCase interface {
	ExtractFromURL(ctx context.Context, listingURL string) (entities.Property, error)
	GetByID(ctx context.Context, id string) (entities.Property, error)
}

type PropertyUseCase struct {
	repo      interfaces.IPropertyRepository
	extractor interfaces.IPropertyExtractor
}

var _ IPropertyUseCase = (*PropertyUseCase)(nil)

func NewPropertyUseCase(repo interfaces.IPropertyRepository, extractor interfaces.IPropertyExtractor) *PropertyUseCase {
	return &PropertyUseCase{repo: repo, extractor: extractor}
}

func (u *PropertyUseCase) ExtractFromURL(ctx context.Context, listingURL string) (entities.Property, error) {
	listingURL = strings.TrimSpace(listingURL)
	if listingURL == "" {
		return entities.Property{}, ErrInvalidListingURL
	}
	if parsed, err := url.Parse(listingURL); err != nil || parsed.Host == "" {
		return entities.Property{}, ErrInvalidListingURL
	}
	log.Printf("[property][usecase] extract start url=%s", listingURL)

	existing, err := u.repo.GetBySourceURL(ctx, listingURL)
	if err != nil {
		return entities.Property{}, err
	}
	if existing.ID != "" {
		log.Printf("[property][usecase] url already known property_id=%s", existing.ID)
		return existing, nil
	}

	extracted, err := u.extractor.Extract(ctx, listingURL)
	if err != nil {
		log.Printf("[property][usecase] extraction failed url=%s err=%v", listingURL, err)
		return entities.Property{}, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	extracted.SourceURL = listingURL
	if extracted.PropertyType == "" {
		extracted.PropertyType = entities.DefaultPropertyType
	}

	sameAddress, err := u.repo.ListByAddress(ctx, extracted.Address, extracted.City, extracted.State, extracted.ZipCode)
	if err != nil {
		return entities.Property{}, err
	}
	if len(sameAddress) > 0 {
		p := sameAddress[0]
		if p.SourceURL == listingURL {
			return p, nil
		}
		p.SourceURL = listingURL
		p.SourceType = extracted.SourceType
		p.MergeMissing(extracted)
		p.UpdatedAt = time.Now().UTC()
		log.Printf("[property][usecase] address already known, merging property_id=%s", p.ID)
		return u.repo.Update(ctx, p)
	}

	now := time.Now().UTC()
	extracted.ID = uuid.NewString()
	extracted.CreatedAt = now
	extracted.UpdatedAt = now
	created, err := u.repo.Create(ctx, extracted)
	if err != nil {
		return entities.Property{}, err
	}
	log.Printf("[property][usecase] created property_id=%s source_type=%s", created.ID, created.SourceType)
	return created, nil
}

func (u *PropertyUseCase) GetByID(ctx context.Context, id string) (entities.Property, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Property{}, ErrInvalidPropertyID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Property{}, err
	}
	if p.ID == "" {
		return entities.Property{}, ErrPropertyNotFound
	}
	return p, nil
}
