package model

import "time"

// InfoTopic is grouped by section then subcategory for display.
type InfoTopic struct {
	ID          uint64 `gorm:"primaryKey"`
	GuildID     string `gorm:"size:32;not null;index"`
	Section     string `gorm:"size:100;not null"`
	Subcategory string `gorm:"size:100"`
	TopicID     string `gorm:"size:64;not null"`
	Name        string `gorm:"size:100;not null"`
	Title       string `gorm:"size:256"`
	Description string `gorm:"type:text"`
	Color       int    `gorm:"not null;default:0"`
	Views       int64  `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (InfoTopic) TableName() string { return "info_topics" }
