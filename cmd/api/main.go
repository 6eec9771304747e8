package main

import (
	"aeon_dashboard/internal/config"
	"aeon_dashboard/internal/dispatch"
	"aeon_dashboard/internal/handler"
	"aeon_dashboard/internal/pkg"
	"aeon_dashboard/internal/repository/postgres"
	redisrepo "aeon_dashboard/internal/repository/redis"
	"aeon_dashboard/internal/router"
	"aeon_dashboard/internal/service"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	log := logrus.WithField("component", "dashboard")

	db, err := postgres.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to postgres")
	}
	if err := db.Bootstrap(); err != nil {
		log.WithError(err).Fatal("failed to bootstrap schema")
	}

	// Redis is optional; without it aggregate reads just hit the database.
	var redisClient *goredis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = redisrepo.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.WithError(err).Warn("redis unavailable, stats cache disabled")
			redisClient = nil
		}
	}

	// Kafka is optional; without it moderation events are simply not published.
	var producer *pkg.KafkaProducer
	if len(cfg.KafkaBrokers) > 0 {
		producer, err = pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		})
		if err != nil {
			log.WithError(err).Warn("kafka unavailable, event publishing disabled")
			producer = nil
		} else {
			defer producer.Close()
		}
	}

	gdb := db.Gorm
	discoveryRepo := &postgres.DiscoveryRepository{DB: gdb}
	memberRepo := &postgres.MemberRepository{DB: gdb}
	statRepo := &postgres.MessageStatRepository{DB: gdb}
	ticketRepo := &postgres.TicketRepository{DB: gdb}
	panelRepo := &postgres.PanelRepository{DB: gdb}
	warningRepo := &postgres.WarningRepository{DB: gdb}
	legacyWarnRepo := &postgres.LegacyWarnRepository{DB: gdb}
	commandRepo := &postgres.CommandRepository{DB: gdb}
	triggerRepo := &postgres.TriggerRepository{DB: gdb}
	voteRepo := &postgres.VoteRepository{DB: gdb}
	auditRepo := &postgres.AuditRepository{DB: gdb}

	statsCache := redisrepo.NewStatsCacheRepository(redisClient)
	discovery := service.NewDiscoveryService(discoveryRepo)
	resolver := service.NewGuildResolver(cfg.DefaultGuildID, discovery, log)

	deps := dispatch.Deps{
		Resolver:  resolver,
		Discovery: discovery,
		Stats: service.NewStatsService(memberRepo, statRepo, ticketRepo,
			warningRepo, commandRepo, triggerRepo, statsCache, log),
		Votes:   service.NewVoteService(voteRepo),
		Tickets: service.NewTicketService(ticketRepo, panelRepo),
		Warns:   service.NewWarnService(warningRepo, legacyWarnRepo, log),
		Audit:   service.NewAuditService(auditRepo),
		Events:  service.NewEventPublisher(producer, log),

		Settings:      &postgres.SettingRepository{DB: gdb},
		Commands:      commandRepo,
		Triggers:      triggerRepo,
		Templates:     &postgres.TemplateRepository{DB: gdb},
		Topics:        &postgres.InfoTopicRepository{DB: gdb},
		ReactionRoles: &postgres.ReactionRoleRepository{DB: gdb},
		ButtonRoles:   &postgres.ButtonRoleRepository{DB: gdb},
		Blacklist:     &postgres.BlacklistRepository{DB: gdb},
		Scans:         &postgres.ScanRepository{DB: gdb},
	}

	dispatcher := dispatch.NewDispatcher(deps, log)
	r := router.InitRouter(
		handler.NewQueryHandler(dispatcher, log),
		handler.NewHealthHandler(db),
	)

	log.WithField("port", cfg.Port).Info("dashboard API listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
