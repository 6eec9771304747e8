package postgres

import (
	"context"

	"aeon_dashboard/internal/model"

	"gorm.io/gorm"
)

type BlacklistRepository struct {
	DB *gorm.DB
}

func (r *BlacklistRepository) List(ctx context.Context, guildID string) ([]model.Blacklist, error) {
	var list []model.Blacklist
	err := r.DB.WithContext(ctx).
		Where("guild_id = ?", guildID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *BlacklistRepository) Create(ctx context.Context, b *model.Blacklist) error {
	return r.DB.WithContext(ctx).Create(b).Error
}

type ScanRepository struct {
	DB *gorm.DB
}

func (r *ScanRepository) List(ctx context.Context, guildID string, limit int) ([]model.Scan, error) {
	var list []model.Scan
	err := r.DB.WithContext(ctx).
		Where("guild_id = ?", guildID).
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *ScanRepository) Create(ctx context.Context, s *model.Scan) error {
	return r.DB.WithContext(ctx).Create(s).Error
}
