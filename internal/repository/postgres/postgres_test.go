package postgres

import (
	"testing"

	"aeon_dashboard/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with the schema migrated.
// MaxOpenConns is pinned to 1 so every query sees the same :memory: store.
func newTestDB(t *testing.T) *gorm.DB {
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
	))
	return db
}
