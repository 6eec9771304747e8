package postgres

import (
	"context"

	"aeon_dashboard/internal/model"

	"gorm.io/gorm"
)

type AuditRepository struct {
	DB *gorm.DB
}

func (r *AuditRepository) List(ctx context.Context, guildID string, limit int) ([]model.AuditLog, error) {
	var list []model.AuditLog
	err := r.DB.WithContext(ctx).
		Where("guild_id = ?", guildID).
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *AuditRepository) Create(ctx context.Context, entry *model.AuditLog) error {
	return r.DB.WithContext(ctx).Create(entry).Error
}
