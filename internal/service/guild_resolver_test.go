package service

import (
	"context"
	"testing"

	"aeon_dashboard/internal/repository/postgres"

	"github.com/stretchr/testify/assert"
)

// The resolver consumes the discovery service's raw scan in production.
var _ guildScanner = (*DiscoveryService)(nil)

type stubScanner struct {
	rows []postgres.GuildSource
}

func (s *stubScanner) ScanTables(ctx context.Context) []postgres.GuildSource {
	return s.rows
}

func detectableScanner() *stubScanner {
	return &stubScanner{rows: []postgres.GuildSource{
		{GuildID: "111", Source: "guild_members", Count: 50},
		{GuildID: "222", Source: "guild_members", Count: 3},
	}}
}

func TestResolvePrefersRealSuppliedID(t *testing.T) {
	r := NewGuildResolver("", detectableScanner(), nil)
	assert.Equal(t, "999", r.Resolve(context.Background(), "999"))
}

func TestResolvePlaceholdersNeverWinOverDetection(t *testing.T) {
	for _, supplied := range []string{"", "YOUR_GUILD_ID", "https://YOUR_GUILD_ID.example", FallbackGuildID} {
		r := NewGuildResolver("", detectableScanner(), nil)
		assert.Equal(t, "111", r.Resolve(context.Background(), supplied),
			"supplied %q must not beat the auto-detected guild", supplied)
	}
}

func TestResolveDefensiveRecheckKeepsNonEmptySupplied(t *testing.T) {
	// Detection found nothing; a non-empty near-placeholder is still better
	// than the hardcoded fallback.
	r := NewGuildResolver("", &stubScanner{}, nil)
	assert.Equal(t, "guild-YOUR_GUILD_ID", r.Resolve(context.Background(), "guild-YOUR_GUILD_ID"))
}

func TestResolveFallsBackToConfiguredDefault(t *testing.T) {
	r := NewGuildResolver("777", &stubScanner{}, nil)
	assert.Equal(t, "777", r.Resolve(context.Background(), ""))
}

func TestResolvePlaceholderDefaultYieldsFallback(t *testing.T) {
	r := NewGuildResolver("YOUR_GUILD_ID", &stubScanner{}, nil)
	assert.Equal(t, FallbackGuildID, r.Resolve(context.Background(), ""))
}

func TestResolveNeverReturnsEmpty(t *testing.T) {
	r := NewGuildResolver("", &stubScanner{}, nil)
	assert.Equal(t, FallbackGuildID, r.Resolve(context.Background(), ""))
}

func TestAutoDetectionIsMemoized(t *testing.T) {
	scanner := detectableScanner()
	r := NewGuildResolver("", scanner, nil)
	assert.Equal(t, "111", r.Resolve(context.Background(), ""))

	// Later scans would find a different winner, but the first result sticks.
	scanner.rows = []postgres.GuildSource{{GuildID: "333", Source: "tickets", Count: 999}}
	assert.Equal(t, "111", r.Resolve(context.Background(), ""))
}

func TestIsPlaceholderGuildID(t *testing.T) {
	assert.True(t, IsPlaceholderGuildID(""))
	assert.True(t, IsPlaceholderGuildID("YOUR_GUILD_ID"))
	assert.True(t, IsPlaceholderGuildID(FallbackGuildID))
	assert.False(t, IsPlaceholderGuildID("123456789012345678"))
}
