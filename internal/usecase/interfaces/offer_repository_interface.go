package interfaces

import (
	"context"
	"offer_agent/internal/domain/entities"
)

// IOfferRepository abstracts persistence for Offer.

type IOfferRepository interface {
	Create(ctx context.Context, o entities.Offer) (entities.Offer, error)
	Update(ctx context.Context, o entities.Offer) (entities.Offer, error)
	GetByID(ctx context.Context, id string) (entities.Offer, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Offer, error)
}
