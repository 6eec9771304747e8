package model

import "time"

type GuildSetting struct {
	GuildID          string `gorm:"primaryKey;size:32"`
	Prefix           string `gorm:"size:16;not null;default:'!'"`
	LevelingEnabled  bool   `gorm:"not null;default:true"`
	TicketsEnabled   bool   `gorm:"not null;default:true"`
	TriggersEnabled  bool   `gorm:"not null;default:true"`
	WelcomeEnabled   bool   `gorm:"not null;default:false"`
	GlobalCooldownMs int64  `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (GuildSetting) TableName() string { return "guild_settings" }
