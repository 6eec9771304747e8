package service

import (
	"context"
	"strings"
	"time"

	"aeon_dashboard/internal/repository/postgres"
)

// Severity classes the UI renders for audit entries.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeveritySuccess = "success"
	SeverityInfo    = "info"
)

// Keyword tables for SeverityFor. Success keywords are checked first:
// "unban" contains "ban" and "unmute" contains "mute", so undo-style
// actions must win before the destructive matches run.
var (
	successKeywords = []string{"unban", "unmute", "resolved", "approve"}
	errorKeywords   = []string{"ban", "kick", "delete"}
	warningKeywords = []string{"warn", "mute", "timeout"}
)

// SeverityFor maps a stored action type onto a display severity. It is a
// pure, total function: every string maps to exactly one class.
func SeverityFor(actionType string) string {
	t := strings.ToLower(actionType)
	for _, kw := range successKeywords {
		if strings.Contains(t, kw) {
			return SeveritySuccess
		}
	}
	for _, kw := range errorKeywords {
		if strings.Contains(t, kw) {
			return SeverityError
		}
	}
	for _, kw := range warningKeywords {
		if strings.Contains(t, kw) {
			return SeverityWarning
		}
	}
	return SeverityInfo
}

// AuditEntry is the UI-facing shape of an audit log row.
type AuditEntry struct {
	ID          uint64    `json:"id"`
	GuildID     string    `json:"guild_id"`
	ActionType  string    `json:"action_type"`
	Severity    string    `json:"severity"`
	UserID      string    `json:"user_id"`
	ModeratorID string    `json:"moderator_id"`
	Reason      string    `json:"reason"`
	BotAction   bool      `json:"bot_action"`
	CreatedAt   time.Time `json:"created_at"`
}

type AuditService struct {
	repo *postgres.AuditRepository
}

func NewAuditService(repo *postgres.AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

func (s *AuditService) List(ctx context.Context, guildID string, limit int) ([]AuditEntry, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := s.repo.List(ctx, guildID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]AuditEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, AuditEntry{
			ID:          row.ID,
			GuildID:     row.GuildID,
			ActionType:  row.ActionType,
			Severity:    SeverityFor(row.ActionType),
			UserID:      row.UserID,
			ModeratorID: row.ModeratorID,
			Reason:      row.Reason,
			BotAction:   row.BotAction,
			CreatedAt:   row.CreatedAt,
		})
	}
	return out, nil
}
