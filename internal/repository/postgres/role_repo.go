package postgres

import (
	"context"

	"aeon_dashboard/internal/model"
	"aeon_dashboard/internal/pkg"

	"gorm.io/gorm"
)

type ReactionRoleRepository struct {
	DB *gorm.DB
}

func (r *ReactionRoleRepository) List(ctx context.Context, guildID string) ([]model.ReactionRole, error) {
	var list []model.ReactionRole
	err := r.DB.WithContext(ctx).
		Where("guild_id = ?", guildID).
		Order("id ASC").
		Find(&list).Error
	return list, err
}

func (r *ReactionRoleRepository) Create(ctx context.Context, rr *model.ReactionRole) error {
	return r.DB.WithContext(ctx).Create(rr).Error
}

func (r *ReactionRoleRepository) Delete(ctx context.Context, guildID string, id uint64) error {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND guild_id = ?", id, guildID).
		Delete(&model.ReactionRole{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pkg.NotFound("reaction role not found")
	}
	return nil
}

type ButtonRoleRepository struct {
	DB *gorm.DB
}

func (r *ButtonRoleRepository) List(ctx context.Context, guildID string) ([]model.ButtonRole, error) {
	var list []model.ButtonRole
	err := r.DB.WithContext(ctx).
		Where("guild_id = ?", guildID).
		Order("id ASC").
		Find(&list).Error
	return list, err
}

func (r *ButtonRoleRepository) Create(ctx context.Context, br *model.ButtonRole) error {
	return r.DB.WithContext(ctx).Create(br).Error
}

func (r *ButtonRoleRepository) Delete(ctx context.Context, guildID string, id uint64) error {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND guild_id = ?", id, guildID).
		Delete(&model.ButtonRole{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pkg.NotFound("button role not found")
	}
	return nil
}
