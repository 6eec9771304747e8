package postgres

import (
	"context"
	"errors"

	"aeon_dashboard/internal/model"
	"aeon_dashboard/internal/pkg"

	"gorm.io/gorm"
)

type CommandRepository struct {
	DB *gorm.DB
}

func (r *CommandRepository) List(ctx context.Context, guildID string) ([]model.CustomCommand, error) {
	var list []model.CustomCommand
	err := r.DB.WithContext(ctx).
		Where("guild_id = ?", guildID).
		Order(`"trigger" ASC`).
		Find(&list).Error
	return list, err
}

// Create enforces trigger uniqueness within the guild. The check-then-insert
// runs in one transaction so two concurrent creates cannot both pass the
// check; the unique index backstops the race.
func (r *CommandRepository) Create(ctx context.Context, cmd *model.CustomCommand) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.CustomCommand
		err := tx.Where(`guild_id = ? AND "trigger" = ?`, cmd.GuildID, cmd.Trigger).
			First(&existing).Error
		if err == nil {
			return pkg.Conflict("a command with this trigger already exists")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := tx.Create(cmd).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return pkg.Conflict("a command with this trigger already exists")
			}
			return err
		}
		return nil
	})
}

func (r *CommandRepository) Update(ctx context.Context, guildID string, id uint64, updates map[string]any) error {
	res := r.DB.WithContext(ctx).Model(&model.CustomCommand{}).
		Where("id = ? AND guild_id = ?", id, guildID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pkg.NotFound("command not found")
	}
	return nil
}

func (r *CommandRepository) Delete(ctx context.Context, guildID string, id uint64) error {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND guild_id = ?", id, guildID).
		Delete(&model.CustomCommand{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pkg.NotFound("command not found")
	}
	return nil
}

func (r *CommandRepository) Count(ctx context.Context, guildID string) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.CustomCommand{}).
		Where("guild_id = ?", guildID).
		Count(&n).Error
	return n, err
}
