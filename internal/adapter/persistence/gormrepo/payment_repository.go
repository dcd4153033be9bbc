package gormrepo

import (
	"context"

	"offer_agent/internal/domain/entities"
	"offer_agent/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

var _ interfaces.IPaymentRepository = (*PaymentRepository)(nil)

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	m := toPaymentModel(p)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Payment{}, err
	}
	return m.toEntity(), nil
}

func (r *PaymentRepository) Update(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	m := toPaymentModel(p)
	found, err := replace(ctx, r.db, &m, p.ID)
	if err != nil || !found {
		return entities.Payment{}, err
	}
	return m.toEntity(), nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	var m paymentModel
	found, err := first(ctx, r.db, &m, "id = ?", id)
	if err != nil || !found {
		return entities.Payment{}, err
	}
	return m.toEntity(), nil
}

func (r *PaymentRepository) GetBySessionID(ctx context.Context, sessionID string) (entities.Payment, error) {
	var m paymentModel
	found, err := first(ctx, r.db, &m, "provider_session_id = ?", sessionID)
	if err != nil || !found {
		return entities.Payment{}, err
	}
	return m.toEntity(), nil
}

func (r *PaymentRepository) ListByOfferID(ctx context.Context, offerID string) ([]entities.Payment, error) {
	var rows []paymentModel
	if err := r.db.WithContext(ctx).Where("offer_id = ?", offerID).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Payment, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}
