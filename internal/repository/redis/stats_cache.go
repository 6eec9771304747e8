package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	StatsTTL            = 60 * time.Second
	TopMembersTTL       = 60 * time.Second
	StatsKeyPrefix      = "dash:stats:guild"
	TopMembersKeyPrefix = "dash:top:members"
)

// StatsCacheRepository caches marshaled aggregate payloads per guild.
// Every method is a no-op on a nil client and every failure degrades to a
// cache miss; the database stays the source of truth.
type StatsCacheRepository struct {
	Client *redis.Client

	statsTTL time.Duration
	topTTL   time.Duration
}

func NewStatsCacheRepository(client *redis.Client) *StatsCacheRepository {
	return &StatsCacheRepository{
		Client:   client,
		statsTTL: StatsTTL,
		topTTL:   TopMembersTTL,
	}
}

func (r *StatsCacheRepository) statsKey(guildID string) string {
	return fmt.Sprintf("%s:%s", StatsKeyPrefix, guildID)
}

func (r *StatsCacheRepository) topKey(guildID string, limit int) string {
	return fmt.Sprintf("%s:%s:%d", TopMembersKeyPrefix, guildID, limit)
}

func (r *StatsCacheRepository) get(ctx context.Context, key string, dest any) (bool, error) {
	if r == nil || r.Client == nil {
		return false, nil
	}
	raw, err := r.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		// Poisoned entry; drop it and treat as a miss.
		_ = r.Client.Del(ctx, key).Err()
		return false, nil
	}
	return true, nil
}

func (r *StatsCacheRepository) set(ctx context.Context, key string, v any, ttl time.Duration) {
	if r == nil || r.Client == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = r.Client.Set(ctx, key, raw, ttl).Err()
}

func (r *StatsCacheRepository) GetStats(ctx context.Context, guildID string, dest any) (bool, error) {
	return r.get(ctx, r.statsKey(guildID), dest)
}

func (r *StatsCacheRepository) SetStats(ctx context.Context, guildID string, v any) {
	r.set(ctx, r.statsKey(guildID), v, r.statsTTL)
}

func (r *StatsCacheRepository) GetTopMembers(ctx context.Context, guildID string, limit int, dest any) (bool, error) {
	return r.get(ctx, r.topKey(guildID, limit), dest)
}

func (r *StatsCacheRepository) SetTopMembers(ctx context.Context, guildID string, limit int, v any) {
	r.set(ctx, r.topKey(guildID, limit), v, r.topTTL)
}

// InvalidateGuild drops cached aggregates after a write that changes them.
func (r *StatsCacheRepository) InvalidateGuild(ctx context.Context, guildID string) {
	if r == nil || r.Client == nil {
		return
	}
	_ = r.Client.Del(ctx, r.statsKey(guildID)).Err()
	iter := r.Client.Scan(ctx, 0, fmt.Sprintf("%s:%s:*", TopMembersKeyPrefix, guildID), 50).Iterator()
	for iter.Next(ctx) {
		_ = r.Client.Del(ctx, iter.Val()).Err()
	}
}
