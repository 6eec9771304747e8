package model

import "time"

const (
	TicketOpen       = "open"
	TicketInProgress = "in_progress"
	TicketResolved   = "resolved"
	TicketClosed     = "closed"
)

type TicketPanel struct {
	ID          uint64 `gorm:"primaryKey"`
	GuildID     string `gorm:"size:32;not null;index"`
	Name        string `gorm:"size:100;not null"`
	ChannelID   string `gorm:"size:32"`
	ButtonLabel string `gorm:"size:80"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (TicketPanel) TableName() string { return "ticket_panels" }

// Ticket status only moves forward in the dashboard:
// open -> in_progress (claim) -> resolved/closed (close).
type Ticket struct {
	ID         uint64 `gorm:"primaryKey"`
	GuildID    string `gorm:"size:32;not null;index"`
	PanelID    uint64 `gorm:"not null;index"`
	UserID     string `gorm:"size:32;not null"`
	Status     string `gorm:"size:16;not null;default:'open'"`
	AssignedTo string `gorm:"size:32"`
	OpenedAt   time.Time
	ClosedAt   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Ticket) TableName() string { return "tickets" }
