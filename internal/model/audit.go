package model

import "time"

// AuditLog rows are append-only; severity is derived from ActionType at read
// time and never stored.
type AuditLog struct {
	ID          uint64 `gorm:"primaryKey"`
	GuildID     string `gorm:"size:32;not null;index"`
	ActionType  string `gorm:"size:64;not null"`
	UserID      string `gorm:"size:32"`
	ModeratorID string `gorm:"size:32"`
	Reason      string `gorm:"type:text"`
	BotAction   bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

func (AuditLog) TableName() string { return "audit_logs" }
