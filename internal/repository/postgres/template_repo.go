package postgres

import (
	"context"

	"aeon_dashboard/internal/model"
	"aeon_dashboard/internal/pkg"

	"gorm.io/gorm"
)

type TemplateRepository struct {
	DB *gorm.DB
}

func (r *TemplateRepository) List(ctx context.Context, guildID string) ([]model.MessageTemplate, error) {
	var list []model.MessageTemplate
	err := r.DB.WithContext(ctx).
		Where("guild_id = ?", guildID).
		Order("name ASC").
		Find(&list).Error
	return list, err
}

func (r *TemplateRepository) Create(ctx context.Context, t *model.MessageTemplate) error {
	return r.DB.WithContext(ctx).Create(t).Error
}

func (r *TemplateRepository) Delete(ctx context.Context, guildID string, id uint64) error {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND guild_id = ?", id, guildID).
		Delete(&model.MessageTemplate{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pkg.NotFound("embed not found")
	}
	return nil
}
