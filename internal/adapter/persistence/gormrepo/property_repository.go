package gormrepo

import (
	"context"

	"offer_agent/internal/domain/entities"
	"offer_agent/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type PropertyRepository struct {
	db *gorm.DB
}

var _ interfaces.IPropertyRepository = (*PropertyRepository)(nil)

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) Create(ctx context.Context, p entities.Property) (entities.Property, error) {
	m := toPropertyModel(p)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Property{}, err
	}
	return m.toEntity(), nil
}

func (r *PropertyRepository) Update(ctx context.Context, p entities.Property) (entities.Property, error) {
	m := toPropertyModel(p)
	found, err := replace(ctx, r.db, &m, p.ID)
	if err != nil || !found {
		return entities.Property{}, err
	}
	return m.toEntity(), nil
}

func (r *PropertyRepository) GetByID(ctx context.Context, id string) (entities.Property, error) {
	var m propertyModel
	found, err := first(ctx, r.db, &m, "id = ?", id)
	if err != nil || !found {
		return entities.Property{}, err
	}
	return m.toEntity(), nil
}

func (r *PropertyRepository) GetBySourceURL(ctx context.Context, sourceURL string) (entities.Property, error) {
	var m propertyModel
	found, err := first(ctx, r.db, &m, "source_url = ?", sourceURL)
	if err != nil || !found {
		return entities.Property{}, err
	}
	return m.toEntity(), nil
}

func (r *PropertyRepository) ListByAddress(ctx context.Context, address, city, state, zipCode string) ([]entities.Property, error) {
	var rows []propertyModel
	err := r.db.WithContext(ctx).
		Where("address_key = ?", entities.AddressKey(address, city, state, zipCode)).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.Property, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}
