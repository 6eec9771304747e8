package model

import "time"

// EmbedField is one element of MessageTemplate.Fields.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// MessageTemplate stores a named embed with discrete columns. This is the
// canonical embed schema; the old JSON-blob variant is a migration source.
type MessageTemplate struct {
	ID           uint64 `gorm:"primaryKey"`
	GuildID      string `gorm:"size:32;not null;index"`
	Name         string `gorm:"size:100;not null"`
	Title        string `gorm:"size:256"`
	Description  string `gorm:"type:text"`
	Color        int    `gorm:"not null;default:0"`
	Footer       string `gorm:"size:256"`
	ThumbnailURL string `gorm:"size:512"`
	ImageURL     string `gorm:"size:512"`
	Fields       string `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (MessageTemplate) TableName() string { return "message_templates" }
