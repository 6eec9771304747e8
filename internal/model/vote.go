package model

import "time"

// VoteOption is one element of Vote.Options.
type VoteOption struct {
	Text  string `json:"text"`
	Votes int64  `json:"votes"`
}

// Vote.IsActive is only half the story: a vote counts as active when the
// stored flag is set AND EndTime has not passed. Use ActiveNow.
type Vote struct {
	ID         uint64 `gorm:"primaryKey"`
	GuildID    string `gorm:"size:32;not null;index"`
	Question   string `gorm:"type:text;not null"`
	Options    string `gorm:"type:jsonb;not null;default:'[]'"`
	EndTime    time.Time
	IsActive   bool  `gorm:"not null;default:true"`
	TotalVotes int64 `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Vote) TableName() string { return "votes" }

func (v *Vote) ActiveNow(now time.Time) bool {
	return v.IsActive && v.EndTime.After(now)
}

// VoteCast records one user's choice; (vote_id, user_id) is unique so a
// second cast is a constraint violation, never an overwrite.
type VoteCast struct {
	ID          uint64 `gorm:"primaryKey"`
	VoteID      uint64 `gorm:"not null;index;uniqueIndex:uk_vote_user"`
	UserID      string `gorm:"size:32;not null;uniqueIndex:uk_vote_user"`
	OptionIndex int    `gorm:"not null"`
	CreatedAt   time.Time
}

func (VoteCast) TableName() string { return "vote_casts" }
