package gormrepo

import (
	"context"

	"offer_agent/internal/domain/entities"
	"offer_agent/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

var _ interfaces.ISubscriptionRepository = (*SubscriptionRepository)(nil)

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Create(ctx context.Context, s entities.Subscription) (entities.Subscription, error) {
	m := toSubscriptionModel(s)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Subscription{}, err
	}
	return m.toEntity(), nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, s entities.Subscription) (entities.Subscription, error) {
	m := toSubscriptionModel(s)
	found, err := replace(ctx, r.db, &m, s.ID)
	if err != nil || !found {
		return entities.Subscription{}, err
	}
	return m.toEntity(), nil
}

func (r *SubscriptionRepository) GetByProviderID(ctx context.Context, providerSubscriptionID string) (entities.Subscription, error) {
	var m subscriptionModel
	found, err := first(ctx, r.db, &m, "provider_subscription_id = ?", providerSubscriptionID)
	if err != nil || !found {
		return entities.Subscription{}, err
	}
	return m.toEntity(), nil
}

func (r *SubscriptionRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Subscription, error) {
	var rows []subscriptionModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Subscription, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}
