package postgres

import (
	"context"
	"testing"

	"aeon_dashboard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingGetReturnsDefaultsWhenUnconfigured(t *testing.T) {
	repo := &SettingRepository{DB: newTestDB(t)}

	s, err := repo.Get(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, "g1", s.GuildID)
	assert.Equal(t, "!", s.Prefix)
	assert.True(t, s.LevelingEnabled)
	assert.True(t, s.TicketsEnabled)
	assert.True(t, s.TriggersEnabled)
	assert.False(t, s.WelcomeEnabled)
}

func TestSettingUpsertRoundTrip(t *testing.T) {
	repo := &SettingRepository{DB: newTestDB(t)}
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &model.GuildSetting{
		GuildID:          "g1",
		Prefix:           "?",
		LevelingEnabled:  true,
		TicketsEnabled:   true,
		TriggersEnabled:  true,
		GlobalCooldownMs: 500,
	}))

	// Second upsert on the same guild replaces, never duplicates.
	require.NoError(t, repo.Upsert(ctx, &model.GuildSetting{
		GuildID:         "g1",
		Prefix:          ".",
		TicketsEnabled:  true,
		TriggersEnabled: true,
		WelcomeEnabled:  true,
	}))

	got, err := repo.Get(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, ".", got.Prefix)
	assert.False(t, got.LevelingEnabled)
	assert.True(t, got.WelcomeEnabled)
	assert.Equal(t, int64(0), got.GlobalCooldownMs)
}
