package postgres

import (
	"context"

	"aeon_dashboard/internal/model"
	"aeon_dashboard/internal/pkg"

	"gorm.io/gorm"
)

type TriggerRepository struct {
	DB *gorm.DB
}

func (r *TriggerRepository) List(ctx context.Context, guildID string) ([]model.Trigger, error) {
	var list []model.Trigger
	err := r.DB.WithContext(ctx).
		Where("guild_id = ?", guildID).
		Order("id DESC").
		Find(&list).Error
	return list, err
}

func (r *TriggerRepository) Create(ctx context.Context, t *model.Trigger) error {
	return r.DB.WithContext(ctx).Create(t).Error
}

func (r *TriggerRepository) Update(ctx context.Context, guildID string, id uint64, updates map[string]any) error {
	res := r.DB.WithContext(ctx).Model(&model.Trigger{}).
		Where("id = ? AND guild_id = ?", id, guildID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pkg.NotFound("trigger not found")
	}
	return nil
}

func (r *TriggerRepository) Delete(ctx context.Context, guildID string, id uint64) error {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND guild_id = ?", id, guildID).
		Delete(&model.Trigger{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pkg.NotFound("trigger not found")
	}
	return nil
}

func (r *TriggerRepository) Count(ctx context.Context, guildID string) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Trigger{}).
		Where("guild_id = ?", guildID).
		Count(&n).Error
	return n, err
}
