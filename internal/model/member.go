package model

import "time"

// Member rows are written by the bot process; the dashboard only reads them.
type Member struct {
	ID           uint64 `gorm:"primaryKey"`
	GuildID      string `gorm:"size:32;not null;index;uniqueIndex:uk_guild_user"`
	UserID       string `gorm:"size:32;not null;uniqueIndex:uk_guild_user"`
	Username     string `gorm:"size:100"`
	MessageCount int64  `gorm:"not null;default:0"`
	XP           int64  `gorm:"column:xp;not null;default:0"`
	Level        int    `gorm:"not null;default:0"`
	LastActive   time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Member) TableName() string { return "guild_members" }

// MessageStat is a per (guild, channel, day) message counter maintained by
// the bot. Activity analytics and the top-channels view read from here.
type MessageStat struct {
	ID          uint64    `gorm:"primaryKey"`
	GuildID     string    `gorm:"size:32;not null;index;uniqueIndex:uk_guild_channel_day"`
	ChannelID   string    `gorm:"size:32;not null;uniqueIndex:uk_guild_channel_day"`
	ChannelName string    `gorm:"size:100"`
	Day         time.Time `gorm:"not null;uniqueIndex:uk_guild_channel_day"`
	Count       int64     `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (MessageStat) TableName() string { return "message_stats" }
