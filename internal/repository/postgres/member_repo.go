package postgres

import (
	"context"
	"time"

	"aeon_dashboard/internal/model"

	"gorm.io/gorm"
)

type MemberRepository struct {
	DB *gorm.DB
}

func (r *MemberRepository) TopByXP(ctx context.Context, guildID string, limit int) ([]model.Member, error) {
	var list []model.Member
	err := r.DB.WithContext(ctx).
		Where("guild_id = ?", guildID).
		Order("xp DESC, message_count DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *MemberRepository) Count(ctx context.Context, guildID string) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Member{}).
		Where("guild_id = ?", guildID).
		Count(&n).Error
	return n, err
}

func (r *MemberRepository) TotalMessages(ctx context.Context, guildID string) (int64, error) {
	var n *int64
	err := r.DB.WithContext(ctx).Model(&model.Member{}).
		Where("guild_id = ?", guildID).
		Select("SUM(message_count)").
		Scan(&n).Error
	if err != nil || n == nil {
		return 0, err
	}
	return *n, err
}

type MessageStatRepository struct {
	DB *gorm.DB
}

type DayCount struct {
	Day   time.Time `json:"day"`
	Count int64     `json:"count"`
}

type ChannelCount struct {
	ChannelID   string `json:"channel_id"`
	ChannelName string `json:"channel_name"`
	Count       int64  `json:"count"`
}

// ActivityByDay returns per-day message totals for the trailing window.
func (r *MessageStatRepository) ActivityByDay(ctx context.Context, guildID string, since time.Time) ([]DayCount, error) {
	var list []DayCount
	err := r.DB.WithContext(ctx).Model(&model.MessageStat{}).
		Where("guild_id = ? AND day >= ?", guildID, since).
		Select("day, SUM(count) AS count").
		Group("day").
		Order("day ASC").
		Scan(&list).Error
	return list, err
}

func (r *MessageStatRepository) TopChannels(ctx context.Context, guildID string, limit int) ([]ChannelCount, error) {
	var list []ChannelCount
	err := r.DB.WithContext(ctx).Model(&model.MessageStat{}).
		Where("guild_id = ?", guildID).
		Select("channel_id, MAX(channel_name) AS channel_name, SUM(count) AS count").
		Group("channel_id").
		Order("count DESC").
		Limit(limit).
		Scan(&list).Error
	return list, err
}
