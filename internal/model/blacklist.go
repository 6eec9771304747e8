package model

import "time"

type Blacklist struct {
	ID          uint64 `gorm:"primaryKey"`
	GuildID     string `gorm:"size:32;not null;index"`
	UserID      string `gorm:"size:32;not null"`
	ModeratorID string `gorm:"size:32"`
	Reason      string `gorm:"type:text"`
	CreatedAt   time.Time
}

func (Blacklist) TableName() string { return "blacklist" }

// Scan is one content-scan report recorded by the bot or the dashboard.
type Scan struct {
	ID        uint64 `gorm:"primaryKey"`
	GuildID   string `gorm:"size:32;not null;index"`
	UserID    string `gorm:"size:32"`
	ChannelID string `gorm:"size:32"`
	Verdict   string `gorm:"size:16;not null;default:'clean'"`
	Details   string `gorm:"type:text"`
	CreatedAt time.Time
}

func (Scan) TableName() string { return "scans" }
