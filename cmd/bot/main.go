package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"event_reminder_bot/internal/app"
	"event_reminder_bot/internal/domain/event"
	domainTelegram "event_reminder_bot/internal/domain/telegram"
	"event_reminder_bot/internal/infra/clock"
	"event_reminder_bot/internal/infra/config"
	idb "event_reminder_bot/internal/infra/database"
	"event_reminder_bot/internal/infra/logger"
	"event_reminder_bot/internal/infra/metrics"
	"event_reminder_bot/internal/infra/scheduler"
	"event_reminder_bot/internal/infra/telegram"
	"event_reminder_bot/internal/infra/yamlstore"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg)
	mainLogger := logger.Component("main")
	mainLogger.WithFields(logrus.Fields{
		"environment": cfg.Environment,
		"storage":     cfg.StorageDriver,
		"timezone":    cfg.Timezone,
		"admin_id":    cfg.AdminTelegramID,
	}).Info("Event Reminder Bot starting...")

	// Initialize storage
	var repo event.Repository
	switch cfg.StorageDriver {
	case config.StorageDriverYAML:
		store, err := yamlstore.Open(cfg.EventsFile)
		if err != nil {
			mainLogger.WithError(err).Fatal("Could not open events file")
		}
		repo = store
		mainLogger.WithField("file", cfg.EventsFile).Info("YAML event store opened.")
	default:
		db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
		if err != nil {
			mainLogger.WithError(err).Fatal("Could not connect to database")
		}
		defer db.Close()
		if err := idb.Migrate(db, cfg.MigrationsPath); err != nil {
			mainLogger.WithError(err).Fatal("Could not run database migrations")
		}
		repo = idb.NewPostgresEventRepository(db)
		mainLogger.Info("Database connection established and migrated successfully.")
	}

	// Initialize Telegram Bot
	pref := telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 50 * time.Second},
		OnError: func(err error, c telebot.Context) { // Global error handler
			entry := logger.Component("telebot").WithError(err)
			if c != nil && c.Sender() != nil && c.Chat() != nil {
				entry = entry.WithFields(logrus.Fields{
					"text":      c.Text(),
					"sender_id": c.Sender().ID,
					"chat_id":   c.Chat().ID,
				})
			}
			entry.Error("Telegram handler failed")
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create Telegram bot")
	}

	limits := event.Limits{MinYear: cfg.MinYear, MaxYear: cfg.MaxYear}
	zone := clock.NewZone(cfg.Location)

	// Initialize services
	reminderService := app.NewReminderService(
		repo,
		telegram.NewTelebotAdapter(bot),
		zone,
		limits,
		domainTelegram.Target{ChatID: cfg.GroupChatID, ThreadID: cfg.GroupThreadID},
		logger.Component("reminder_service"),
	)
	adminService := app.NewAdminService(repo, cfg.AdminTelegramID, limits)
	mainLogger.Info("Services initialized.")

	// Initialize scheduler
	reminderScheduler := scheduler.NewReminderScheduler(
		reminderService,
		logger.Component("scheduler"),
		cfg.Location,
		cfg.CronSpecDaily,
	)
	if err := reminderScheduler.Start(); err != nil {
		mainLogger.WithError(err).Fatal("Could not start scheduler")
	}

	if cfg.MetricsAddr != "" {
		metricsServer := metrics.Serve(cfg.MetricsAddr, logger.Component("metrics"))
		defer metricsServer.Close()
	}

	// Register Handlers
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	handlersLogger := logger.Component("telegram")
	telegram.RegisterBotCommands(ctx, bot, reminderService, cfg.AdminTelegramID, cfg.GroupThreadID, handlersLogger)
	telegram.RegisterAdminHandlers(ctx, bot, adminService, cfg.AdminTelegramID, cfg.GroupThreadID, zone.Today, handlersLogger)
	mainLogger.Info("Command handlers registered.")

	// Start bot in a goroutine so it doesn't block graceful shutdown handling
	go bot.Start()
	mainLogger.Info("Application setup complete. Bot and scheduler are running.")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	mainLogger.Info("Shutting down application...")
	cancel()
	bot.Stop()
	reminderScheduler.Stop()
	mainLogger.Info("Application shut down gracefully.")
	if err := logger.Close(); err != nil {
		log.Printf("Could not close log file: %v", err)
	}
}
