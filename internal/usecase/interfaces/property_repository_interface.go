package interfaces

import (
	"context"
	"offer_agent/internal/domain/entities"
)

// IPropertyRepository abstracts persistence for Property.
//
// The offer service must be able to:
//   - de-duplicate listings by source URL
//   - de-duplicate listings by postal address (several rows may share one)
//   - fill in missing listing facts on an existing row

type IPropertyRepository interface {
	Create(ctx context.Context, p entities.Property) (entities.Property, error)
	Update(ctx context.Context, p entities.Property) (entities.Property, error)
	GetByID(ctx context.Context, id string) (entities.Property, error)
	GetBySourceURL(ctx context.Context, sourceURL string) (entities.Property, error)
	ListByAddress(ctx context.Context, address string, city string, state string, zipCode string) ([]entities.Property, error)
}
