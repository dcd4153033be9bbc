package gormrepo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// first loads the first row matching query into out. It reports false
// when no row matches.
func first(ctx context.Context, db *gorm.DB, out any, query string, args ...any) (bool, error) {
	err := db.WithContext(ctx).Where(query, args...).First(out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// replace overwrites every column of an existing row. It reports false
// when the row does not exist.
func replace(ctx context.Context, db *gorm.DB, model any, id string) (bool, error) {
	res := db.WithContext(ctx).Model(model).Where("id = ?", id).Select("*").Updates(model)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
