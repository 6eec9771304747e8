package postgres

import (
	"context"

	"aeon_dashboard/internal/model"
	"aeon_dashboard/internal/pkg"

	"gorm.io/gorm"
)

type InfoTopicRepository struct {
	DB *gorm.DB
}

// List returns topics ordered for section/subcategory grouping.
func (r *InfoTopicRepository) List(ctx context.Context, guildID string) ([]model.InfoTopic, error) {
	var list []model.InfoTopic
	err := r.DB.WithContext(ctx).
		Where("guild_id = ?", guildID).
		Order("section ASC, subcategory ASC, name ASC").
		Find(&list).Error
	return list, err
}

func (r *InfoTopicRepository) Create(ctx context.Context, t *model.InfoTopic) error {
	return r.DB.WithContext(ctx).Create(t).Error
}

func (r *InfoTopicRepository) Update(ctx context.Context, guildID string, id uint64, updates map[string]any) error {
	res := r.DB.WithContext(ctx).Model(&model.InfoTopic{}).
		Where("id = ? AND guild_id = ?", id, guildID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pkg.NotFound("info topic not found")
	}
	return nil
}

func (r *InfoTopicRepository) Delete(ctx context.Context, guildID string, id uint64) error {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND guild_id = ?", id, guildID).
		Delete(&model.InfoTopic{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pkg.NotFound("info topic not found")
	}
	return nil
}
