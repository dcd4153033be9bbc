package gormrepo

import (
	"context"

	"offer_agent/internal/domain/entities"
	"offer_agent/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

var _ interfaces.IUserRepository = (*UserRepository)(nil)

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	m := toUserModel(u)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.User{}, err
	}
	return m.toEntity(), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	var m userModel
	found, err := first(ctx, r.db, &m, "id = ?", id)
	if err != nil || !found {
		return entities.User{}, err
	}
	return m.toEntity(), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	var m userModel
	found, err := first(ctx, r.db, &m, "email = ?", normalizeEmail(email))
	if err != nil || !found {
		return entities.User{}, err
	}
	return m.toEntity(), nil
}
