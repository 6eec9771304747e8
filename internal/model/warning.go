package model

import "time"

const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

func ValidWarnSeverity(s string) bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// Warning rows are append-only; they are only ever created or deleted.
type Warning struct {
	ID          uint64 `gorm:"primaryKey"`
	GuildID     string `gorm:"size:32;not null;index"`
	UserID      string `gorm:"size:32;not null;index"`
	ModeratorID string `gorm:"size:32"`
	Severity    string `gorm:"size:8;not null;default:'medium'"`
	Reason      string `gorm:"type:text"`
	CreatedAt   time.Time
}

func (Warning) TableName() string { return "warnings" }

// UserWarnDoc is the legacy warning storage: one row per (guild, user)
// holding a JSON array of warn entries. Kept read-only so existing rows
// stay visible; new warnings go to the warnings table.
type UserWarnDoc struct {
	ID        uint64 `gorm:"primaryKey"`
	GuildID   string `gorm:"size:32;not null;index;uniqueIndex:uk_guild_user_warns"`
	UserID    string `gorm:"size:32;not null;uniqueIndex:uk_guild_user_warns"`
	Warns     string `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserWarnDoc) TableName() string { return "user_warns" }

// WarnEntry is one element of UserWarnDoc.Warns. Timestamp is RFC3339 and
// may be empty on very old rows.
type WarnEntry struct {
	Severity  string `json:"severity"`
	Reason    string `json:"reason"`
	Moderator string `json:"moderator"`
	Timestamp string `json:"timestamp"`
}
