package dispatch

import (
	"context"
	"io"
	"testing"

	"aeon_dashboard/internal/model"
	"aeon_dashboard/internal/pkg"
	"aeon_dashboard/internal/repository/postgres"
	redisrepo "aeon_dashboard/internal/repository/redis"
	"aeon_dashboard/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDispatcher wires a full dispatcher against in-memory sqlite, with
// the cache and event publisher in their disabled (nil-backed) modes.
func newTestDispatcher(t *testing.T) (*Dispatcher, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.GuildSetting{},
		&model.Member{},
		&model.MessageStat{},
		&model.CustomCommand{},
		&model.Trigger{},
		&model.TicketPanel{},
		&model.Ticket{},
		&model.AuditLog{},
		&model.Warning{},
		&model.UserWarnDoc{},
		&model.Vote{},
		&model.VoteCast{},
		&model.MessageTemplate{},
		&model.InfoTopic{},
		&model.ReactionRole{},
		&model.ButtonRole{},
		&model.Blacklist{},
		&model.Scan{},
	))

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	log := logrus.NewEntry(quiet)

	discoveryRepo := &postgres.DiscoveryRepository{DB: db}
	memberRepo := &postgres.MemberRepository{DB: db}
	statRepo := &postgres.MessageStatRepository{DB: db}
	ticketRepo := &postgres.TicketRepository{DB: db}
	panelRepo := &postgres.PanelRepository{DB: db}
	warningRepo := &postgres.WarningRepository{DB: db}
	legacyWarnRepo := &postgres.LegacyWarnRepository{DB: db}
	commandRepo := &postgres.CommandRepository{DB: db}
	triggerRepo := &postgres.TriggerRepository{DB: db}
	voteRepo := &postgres.VoteRepository{DB: db}
	auditRepo := &postgres.AuditRepository{DB: db}

	discovery := service.NewDiscoveryService(discoveryRepo)
	deps := Deps{
		Resolver:  service.NewGuildResolver("g1", discovery, log),
		Discovery: discovery,
		Stats: service.NewStatsService(memberRepo, statRepo, ticketRepo,
			warningRepo, commandRepo, triggerRepo, redisrepo.NewStatsCacheRepository(nil), log),
		Votes:   service.NewVoteService(voteRepo),
		Tickets: service.NewTicketService(ticketRepo, panelRepo),
		Warns:   service.NewWarnService(warningRepo, legacyWarnRepo, log),
		Audit:   service.NewAuditService(auditRepo),
		Events:  service.NewEventPublisher(nil, log),

		Settings:      &postgres.SettingRepository{DB: db},
		Commands:      commandRepo,
		Triggers:      triggerRepo,
		Templates:     &postgres.TemplateRepository{DB: db},
		Topics:        &postgres.InfoTopicRepository{DB: db},
		ReactionRoles: &postgres.ReactionRoleRepository{DB: db},
		ButtonRoles:   &postgres.ButtonRoleRepository{DB: db},
		Blacklist:     &postgres.BlacklistRepository{DB: db},
		Scans:         &postgres.ScanRepository{DB: db},
	}
	return NewDispatcher(deps, log), db
}

func TestDispatchUnknownAction(t *testing.T) {
	d, _ := newTestDispatcher(t)

	_, err := d.Dispatch(context.Background(), "nonsense", nil)
	require.Error(t, err)
	assert.Equal(t, pkg.KindUnknownAction, pkg.KindOf(err))
	assert.True(t, pkg.IsUnknownAction(err))
}

func TestDispatchNilParams(t *testing.T) {
	d, _ := newTestDispatcher(t)

	out, err := d.Dispatch(context.Background(), "getBotSettings", nil)
	require.NoError(t, err)
	settings, ok := out.(*model.GuildSetting)
	require.True(t, ok)
	assert.Equal(t, "g1", settings.GuildID)
	assert.Equal(t, "!", settings.Prefix)
}

func TestCreateTriggerRejectsEmptyTextWithoutWriting(t *testing.T) {
	d, db := newTestDispatcher(t)

	_, err := d.Dispatch(context.Background(), "createTrigger", map[string]any{
		"guildId":  "g1",
		"response": "hi",
	})
	require.Error(t, err)
	assert.Equal(t, pkg.KindValidation, pkg.KindOf(err))
	assert.EqualError(t, err, "trigger_text is required")

	var n int64
	require.NoError(t, db.Model(&model.Trigger{}).Count(&n).Error)
	assert.Equal(t, int64(0), n)
}

func TestCreateTriggerDefaultsMatchType(t *testing.T) {
	d, _ := newTestDispatcher(t)

	out, err := d.Dispatch(context.Background(), "createTrigger", map[string]any{
		"guildId":      "g1",
		"trigger_text": "hello",
		"response":     "world",
	})
	require.NoError(t, err)
	trig, ok := out.(*model.Trigger)
	require.True(t, ok)
	assert.Equal(t, model.MatchContains, trig.MatchType)
	assert.True(t, trig.Enabled)

	_, err = d.Dispatch(context.Background(), "createTrigger", map[string]any{
		"guildId":      "g1",
		"trigger_text": "hello",
		"response":     "world",
		"match_type":   "fuzzy",
	})
	assert.Equal(t, pkg.KindValidation, pkg.KindOf(err))
}

func TestCastVoteEndToEnd(t *testing.T) {
	d, _ := newTestDispatcher(t)
	ctx := context.Background()

	out, err := d.Dispatch(ctx, "createVote", map[string]any{
		"guildId":  "g1",
		"question": "pizza night?",
		"options":  []any{"yes", "no"},
	})
	require.NoError(t, err)
	created, ok := out.(*service.VoteView)
	require.True(t, ok)
	assert.True(t, created.IsActive)

	// JSON numbers arrive as float64; the id getter must cope.
	out, err = d.Dispatch(ctx, "castVote", map[string]any{
		"guildId":     "g1",
		"voteId":      float64(created.ID),
		"userId":      "u1",
		"optionIndex": float64(0),
	})
	require.NoError(t, err)
	view, ok := out.(*service.VoteView)
	require.True(t, ok)
	assert.Equal(t, int64(1), view.TotalVotes)

	_, err = d.Dispatch(ctx, "castVote", map[string]any{
		"guildId":     "g1",
		"voteId":      float64(created.ID),
		"userId":      "u1",
		"optionIndex": float64(1),
	})
	assert.Equal(t, pkg.KindConflict, pkg.KindOf(err))
}

func TestUpdateTriggerNoFields(t *testing.T) {
	d, _ := newTestDispatcher(t)

	_, err := d.Dispatch(context.Background(), "updateTrigger", map[string]any{
		"guildId": "g1",
		"id":      float64(1),
	})
	require.Error(t, err)
	assert.Equal(t, pkg.KindValidation, pkg.KindOf(err))
	assert.EqualError(t, err, "no updatable fields were provided")
}

func TestUpdateBotSettingsPreservesOmittedFields(t *testing.T) {
	d, _ := newTestDispatcher(t)
	ctx := context.Background()

	_, err := d.Dispatch(ctx, "updateBotSettings", map[string]any{
		"guildId":          "g1",
		"prefix":           "?",
		"globalCooldownMs": float64(250),
	})
	require.NoError(t, err)

	// Toggling one flag must not reset the prefix or cooldown.
	out, err := d.Dispatch(ctx, "updateBotSettings", map[string]any{
		"guildId":        "g1",
		"welcomeEnabled": true,
	})
	require.NoError(t, err)
	s, ok := out.(*model.GuildSetting)
	require.True(t, ok)
	assert.Equal(t, "?", s.Prefix)
	assert.Equal(t, int64(250), s.GlobalCooldownMs)
	assert.True(t, s.WelcomeEnabled)
}

func TestActionsAreSortedAndComplete(t *testing.T) {
	d, _ := newTestDispatcher(t)

	names := d.Actions()
	require.NotEmpty(t, names)
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
	for _, want := range []string{"getGuilds", "getDashboardStats", "castVote", "createWarn", "closeTicket"} {
		assert.Contains(t, names, want)
	}
}
