package gormrepo

import (
	"context"

	"offer_agent/internal/domain/entities"
	"offer_agent/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type OfferRepository struct {
	db *gorm.DB
}

var _ interfaces.IOfferRepository = (*OfferRepository)(nil)

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

func (r *OfferRepository) Create(ctx context.Context, o entities.Offer) (entities.Offer, error) {
	m := toOfferModel(o)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Offer{}, err
	}
	return m.toEntity(), nil
}

func (r *OfferRepository) Update(ctx context.Context, o entities.Offer) (entities.Offer, error) {
	m := toOfferModel(o)
	found, err := replace(ctx, r.db, &m, o.ID)
	if err != nil || !found {
		return entities.Offer{}, err
	}
	return m.toEntity(), nil
}

func (r *OfferRepository) GetByID(ctx context.Context, id string) (entities.Offer, error) {
	var m offerModel
	found, err := first(ctx, r.db, &m, "id = ?", id)
	if err != nil || !found {
		return entities.Offer{}, err
	}
	return m.toEntity(), nil
}

func (r *OfferRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Offer, error) {
	var rows []offerModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Offer, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}
