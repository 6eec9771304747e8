package model

import "time"

// CustomCommand triggers are unique within a guild, not globally.
type CustomCommand struct {
	ID              uint64 `gorm:"primaryKey"`
	GuildID         string `gorm:"size:32;not null;index;uniqueIndex:uk_guild_trigger"`
	Trigger         string `gorm:"size:100;not null;uniqueIndex:uk_guild_trigger"`
	Response        string `gorm:"type:text;not null"`
	PermissionLevel int    `gorm:"not null;default:0"`
	CooldownSeconds int    `gorm:"not null;default:0"`
	IsEnabled       bool   `gorm:"not null;default:true"`
	UsageCount      int64  `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (CustomCommand) TableName() string { return "custom_commands" }
