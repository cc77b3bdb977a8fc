package orders

import (
	"context"

	"gorm.io/gorm"

	"github.com/regarstore/v0-xl-kuota-website/models"
)

// Log persists and lists completed orders.
type Log struct {
	db *gorm.DB
}

func NewLog(db *gorm.DB) *Log {
	return &Log{db: db}
}

func (l *Log) Record(ctx context.Context, order *models.Order) error {
	return l.db.WithContext(ctx).Create(order).Error
}

// Recent returns up to limit orders for a session, newest first.
func (l *Log) Recent(ctx context.Context, sessionID string, limit int) ([]models.Order, error) {
	var out []models.Order
	err := l.db.WithContext(ctx).
		Preload("Items").
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}
