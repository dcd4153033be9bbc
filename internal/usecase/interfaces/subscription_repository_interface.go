package interfaces

import (
	"context"
	"offer_agent/internal/domain/entities"
)

// ISubscriptionRepository abstracts persistence for Subscription.

type ISubscriptionRepository interface {
	Create(ctx context.Context, s entities.Subscription) (entities.Subscription, error)
	Update(ctx context.Context, s entities.Subscription) (entities.Subscription, error)
	GetByProviderID(ctx context.Context, providerSubscriptionID string) (entities.Subscription, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Subscription, error)
}
