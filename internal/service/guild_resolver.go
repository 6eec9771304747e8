package service

import (
	"context"
	"strings"
	"sync"

	"aeon_dashboard/internal/repository/postgres"

	"github.com/sirupsen/logrus"
)

const (
	// FallbackGuildID is the last-resort tenant key. It must never win over
	// a real supplied id or a successful auto-detection.
	FallbackGuildID = "1331134690771537920"

	// placeholderSentinel shows up in ids copied from an unconfigured UI.
	placeholderSentinel = "YOUR_GUILD_ID"
)

// IsPlaceholderGuildID reports whether id means "not configured" rather than
// naming a real guild.
func IsPlaceholderGuildID(id string) bool {
	return id == "" ||
		strings.Contains(id, placeholderSentinel) ||
		id == FallbackGuildID
}

type guildScanner interface {
	ScanTables(ctx context.Context) []postgres.GuildSource
}

// GuildResolver decides the effective guild id for a request. Auto-detection
// runs at most once per process: the first caller does the table scan, every
// concurrent caller waits on the same result.
type GuildResolver struct {
	defaultID string
	scanner   guildScanner
	log       *logrus.Entry

	once     sync.Once
	detected string
}

func NewGuildResolver(defaultID string, scanner guildScanner, log *logrus.Entry) *GuildResolver {
	return &GuildResolver{
		defaultID: defaultID,
		scanner:   scanner,
		log:       log,
	}
}

// Resolve never fails; it always has a string to hand back.
//
// Order: a real supplied id wins; then the auto-detected guild; then any
// non-empty supplied value even if it looked like a placeholder (defensive
// re-check); then the configured default, unless that is itself a
// placeholder, in which case the hardcoded fallback.
func (r *GuildResolver) Resolve(ctx context.Context, supplied string) string {
	if supplied != "" && !IsPlaceholderGuildID(supplied) {
		return supplied
	}
	if detected := r.autoDetect(ctx); detected != "" {
		return detected
	}
	if supplied != "" {
		return supplied
	}
	if r.defaultID != "" && !IsPlaceholderGuildID(r.defaultID) {
		return r.defaultID
	}
	return FallbackGuildID
}

// Detected exposes the memoized auto-detection result for the dashboard's
// detectGuild action.
func (r *GuildResolver) Detected(ctx context.Context) string {
	return r.autoDetect(ctx)
}

func (r *GuildResolver) autoDetect(ctx context.Context) string {
	r.once.Do(func() {
		merged := MergeGuildSources(r.scanner.ScanTables(ctx))
		if len(merged) == 0 {
			if r.log != nil {
				r.log.Warn("guild auto-detection found no rows, falling through to default")
			}
			return
		}
		r.detected = merged[0].GuildID
		if r.log != nil {
			r.log.WithFields(logrus.Fields{
				"guild": r.detected,
				"rows":  merged[0].Count,
			}).Info("auto-detected guild")
		}
	})
	return r.detected
}
