package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/regarstore/v0-xl-kuota-website/models"
)

// GormBackend keeps each cart payload in a cart_records row keyed by the
// storage key.
type GormBackend struct {
	db *gorm.DB
}

func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

func (b *GormBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var rec models.CartRecord
	err := b.db.WithContext(ctx).First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(rec.Payload), true, nil
}

func (b *GormBackend) Set(ctx context.Context, key string, payload []byte) error {
	rec := models.CartRecord{Key: key, Payload: string(payload)}
	return b.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&rec).Error
}

func (b *GormBackend) Delete(ctx context.Context, key string) error {
	return b.db.WithContext(ctx).Delete(&models.CartRecord{}, "key = ?", key).Error
}
