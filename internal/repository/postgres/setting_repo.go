package postgres

import (
	"context"
	"errors"

	"aeon_dashboard/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct {
	DB *gorm.DB
}

// Get returns the settings row for a guild, or a defaults-populated value
// when none exists yet (the guild simply hasn't been configured).
func (r *SettingRepository) Get(ctx context.Context, guildID string) (*model.GuildSetting, error) {
	var s model.GuildSetting
	err := r.DB.WithContext(ctx).Where("guild_id = ?", guildID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.GuildSetting{
			GuildID:         guildID,
			Prefix:          "!",
			LevelingEnabled: true,
			TicketsEnabled:  true,
			TriggersEnabled: true,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Upsert writes the full settings row, inserting or replacing on guild_id.
func (r *SettingRepository) Upsert(ctx context.Context, s *model.GuildSetting) error {
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "guild_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"prefix", "leveling_enabled", "tickets_enabled", "triggers_enabled",
			"welcome_enabled", "global_cooldown_ms", "updated_at",
		}),
	}).Create(s).Error
}
