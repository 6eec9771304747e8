package postgres

import (
	"context"

	"aeon_dashboard/internal/model"
	"aeon_dashboard/internal/pkg"

	"gorm.io/gorm"
)

type WarningRepository struct {
	DB *gorm.DB
}

func (r *WarningRepository) List(ctx context.Context, guildID, userID string) ([]model.Warning, error) {
	q := r.DB.WithContext(ctx).Where("guild_id = ?", guildID)
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	var list []model.Warning
	err := q.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *WarningRepository) Create(ctx context.Context, w *model.Warning) error {
	return r.DB.WithContext(ctx).Create(w).Error
}

func (r *WarningRepository) Delete(ctx context.Context, guildID string, id uint64) error {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND guild_id = ?", id, guildID).
		Delete(&model.Warning{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pkg.NotFound("warning not found")
	}
	return nil
}

func (r *WarningRepository) Count(ctx context.Context, guildID string) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Warning{}).
		Where("guild_id = ?", guildID).
		Count(&n).Error
	return n, err
}

// LegacyWarnRepository reads the old JSON-array warn docs. Write paths were
// retired; the table survives only so existing rows stay visible in getWarns.
type LegacyWarnRepository struct {
	DB *gorm.DB
}

func (r *LegacyWarnRepository) ListDocs(ctx context.Context, guildID, userID string) ([]model.UserWarnDoc, error) {
	q := r.DB.WithContext(ctx).Where("guild_id = ?", guildID)
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	var docs []model.UserWarnDoc
	err := q.Find(&docs).Error
	return docs, err
}
