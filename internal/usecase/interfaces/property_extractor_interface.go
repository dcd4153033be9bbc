package interfaces

import (
	"context"
	"offer_agent/internal/domain/entities"
)

// IPropertyExtractor reads a listing page and returns what it could learn
// about the property. The returned Property has no ID yet.
type IPropertyExtractor interface {
	Extract(ctx context.Context, listingURL string) (entities.Property, error)
}
