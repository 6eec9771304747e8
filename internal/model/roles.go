package model

import "time"

// ReactionRole and ButtonRole are parallel tables for the two role-grant
// trigger mechanisms.

type ReactionRole struct {
	ID        uint64 `gorm:"primaryKey"`
	GuildID   string `gorm:"size:32;not null;index"`
	MessageID string `gorm:"size:32;not null"`
	ChannelID string `gorm:"size:32;not null"`
	Emoji     string `gorm:"size:64;not null"`
	RoleID    string `gorm:"size:32;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ReactionRole) TableName() string { return "reaction_roles" }

type ButtonRole struct {
	ID        uint64 `gorm:"primaryKey"`
	GuildID   string `gorm:"size:32;not null;index"`
	MessageID string `gorm:"size:32;not null"`
	ChannelID string `gorm:"size:32;not null"`
	ButtonID  string `gorm:"size:64;not null"`
	Label     string `gorm:"size:80"`
	Style     string `gorm:"size:16;not null;default:'primary'"`
	RoleID    string `gorm:"size:32;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ButtonRole) TableName() string { return "button_roles" }
