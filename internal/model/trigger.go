package model

import "time"

const (
	MatchExact      = "exact"
	MatchContains   = "contains"
	MatchStartsWith = "starts_with"
	MatchEndsWith   = "ends_with"
	MatchRegex      = "regex"
)

// ValidMatchType reports whether t is one of the supported trigger match modes.
func ValidMatchType(t string) bool {
	switch t {
	case MatchExact, MatchContains, MatchStartsWith, MatchEndsWith, MatchRegex:
		return true
	}
	return false
}

type Trigger struct {
	ID          uint64 `gorm:"primaryKey"`
	GuildID     string `gorm:"size:32;not null;index"`
	TriggerText string `gorm:"size:200;not null"`
	Response    string `gorm:"type:text;not null"`
	MatchType   string `gorm:"size:16;not null;default:'contains'"`
	Enabled     bool   `gorm:"not null;default:true"`
	UseCount    int64  `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Trigger) TableName() string { return "triggers" }
