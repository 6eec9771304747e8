package service

import (
	"context"
	"time"

	"aeon_dashboard/internal/repository/postgres"
	"aeon_dashboard/internal/repository/redis"

	"github.com/sirupsen/logrus"
)

type GuildStats struct {
	GuildID      string `json:"guild_id"`
	MemberCount  int64  `json:"member_count"`
	MessageCount int64  `json:"message_count"`
	OpenTickets  int64  `json:"open_tickets"`
	WarningCount int64  `json:"warning_count"`
	CommandCount int64  `json:"command_count"`
	TriggerCount int64  `json:"trigger_count"`
}

type TopMember struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	MessageCount int64  `json:"message_count"`
	XP           int64  `json:"xp"`
	Level        int    `json:"level"`
	Rank         int    `json:"rank"`
}

// StatsService aggregates the dashboard's landing-page numbers. Hot reads go
// cache-aside through Redis; a cache failure is logged and falls back to the
// database.
type StatsService struct {
	members  *postgres.MemberRepository
	stats    *postgres.MessageStatRepository
	tickets  *postgres.TicketRepository
	warnings *postgres.WarningRepository
	commands *postgres.CommandRepository
	triggers *postgres.TriggerRepository
	cache    *redis.StatsCacheRepository
	log      *logrus.Entry
}

func NewStatsService(
	members *postgres.MemberRepository,
	stats *postgres.MessageStatRepository,
	tickets *postgres.TicketRepository,
	warnings *postgres.WarningRepository,
	commands *postgres.CommandRepository,
	triggers *postgres.TriggerRepository,
	cache *redis.StatsCacheRepository,
	log *logrus.Entry,
) *StatsService {
	return &StatsService{
		members:  members,
		stats:    stats,
		tickets:  tickets,
		warnings: warnings,
		commands: commands,
		triggers: triggers,
		cache:    cache,
		log:      log,
	}
}

func (s *StatsService) GuildStats(ctx context.Context, guildID string) (*GuildStats, error) {
	var cached GuildStats
	if ok, err := s.cache.GetStats(ctx, guildID, &cached); err == nil && ok {
		return &cached, nil
	} else if err != nil && s.log != nil {
		s.log.WithError(err).Warn("stats cache read failed")
	}

	out := GuildStats{GuildID: guildID}
	var err error
	if out.MemberCount, err = s.members.Count(ctx, guildID); err != nil {
		return nil, err
	}
	if out.MessageCount, err = s.members.TotalMessages(ctx, guildID); err != nil {
		return nil, err
	}
	if out.OpenTickets, err = s.tickets.CountOpen(ctx, guildID); err != nil {
		return nil, err
	}
	if out.WarningCount, err = s.warnings.Count(ctx, guildID); err != nil {
		return nil, err
	}
	if out.CommandCount, err = s.commands.Count(ctx, guildID); err != nil {
		return nil, err
	}
	if out.TriggerCount, err = s.triggers.Count(ctx, guildID); err != nil {
		return nil, err
	}

	s.cache.SetStats(ctx, guildID, &out)
	return &out, nil
}

func (s *StatsService) TopMembers(ctx context.Context, guildID string, limit int) ([]TopMember, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	var cached []TopMember
	if ok, err := s.cache.GetTopMembers(ctx, guildID, limit, &cached); err == nil && ok {
		return cached, nil
	}

	rows, err := s.members.TopByXP(ctx, guildID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]TopMember, 0, len(rows))
	for i, m := range rows {
		out = append(out, TopMember{
			UserID:       m.UserID,
			Username:     m.Username,
			MessageCount: m.MessageCount,
			XP:           m.XP,
			Level:        m.Level,
			Rank:         i + 1,
		})
	}

	s.cache.SetTopMembers(ctx, guildID, limit, out)
	return out, nil
}

func (s *StatsService) ActivityAnalytics(ctx context.Context, guildID string, days int) ([]postgres.DayCount, error) {
	if days <= 0 || days > 90 {
		days = 14
	}
	since := time.Now().UTC().AddDate(0, 0, -days).Truncate(24 * time.Hour)
	return s.stats.ActivityByDay(ctx, guildID, since)
}

func (s *StatsService) TopChannels(ctx context.Context, guildID string, limit int) ([]postgres.ChannelCount, error) {
	if limit <= 0 || limit > 25 {
		limit = 5
	}
	return s.stats.TopChannels(ctx, guildID, limit)
}

// Invalidate drops cached aggregates for a guild after a relevant write.
func (s *StatsService) Invalidate(ctx context.Context, guildID string) {
	s.cache.InvalidateGuild(ctx, guildID)
}
