package postgres

import (
	"context"
	"sync"

	"aeon_dashboard/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB owns the gorm handle and the one-shot bootstrap latch. Concurrent early
// callers of Bootstrap all wait on the same in-flight migration run instead
// of racing duplicate setup work.
type DB struct {
	Gorm *gorm.DB

	bootstrapOnce sync.Once
	bootstrapErr  error
	bootstrapped  bool
}

func InitDB(dsn string) (*DB, error) {
	g, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	return &DB{Gorm: g}, nil
}

// Bootstrap creates any missing tables. AutoMigrate is idempotent, so an
// already-provisioned database passes straight through.
func (d *DB) Bootstrap() error {
	d.bootstrapOnce.Do(func() {
		d.bootstrapErr = d.Gorm.AutoMigrate(
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
		)
		d.bootstrapped = d.bootstrapErr == nil
	})
	return d.bootstrapErr
}

func (d *DB) Ready() bool { return d.bootstrapped }

func (d *DB) Ping(ctx context.Context) error {
	sqlDB, err := d.Gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (d *DB) Close() error {
	sqlDB, err := d.Gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
