package main

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/infra/config"
	idb "homework_status_bot/internal/infra/database"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

func main() {
	fmt.Println("Homework Status Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Could not load application configuration: %v", err)
	}

	log := logger.New(cfg)
	mainLogger := log.WithField("component", "main")

	if !cfg.Credentials.CheckTokens() {
		mainLogger.WithField("missing", strings.Join(cfg.Credentials.Missing(), ",")).
			Fatal("One or more tokens are unavailable. Process terminated.")
	}
	mainLogger.Infof("Configuration loaded. Endpoint: %s, Schedule: %s, Environment: %s", cfg.Endpoint, cfg.PollSchedule, cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Optional notification journal
	var journal homework.EventRepository
	if cfg.DatabaseURL != "" {
		db, err := idb.NewPostgresConnection(ctx, cfg.DatabaseURL)
		if err != nil {
			mainLogger.Fatalf("Could not connect to database: %v", err)
		}
		defer db.Close()

		eventRepo := idb.NewPostgresEventRepository(db)
		if err := eventRepo.EnsureSchema(ctx); err != nil {
			mainLogger.Fatalf("Could not prepare database schema: %v", err)
		}
		journal = eventRepo
		mainLogger.Info("Notification journal enabled.")
	}

	// Initialize Telegram Bot
	pref := telebot.Settings{
		Token:  cfg.Credentials.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) { // Global error handler
			entry := log.WithField("component", "telebot").WithError(err)
			if c != nil && c.Chat() != nil {
				entry = entry.WithField("chat_id", c.Chat().ID)
			}
			entry.Error("Telegram handler failed")
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		mainLogger.Fatalf("Could not create Telegram bot: %v", err)
	}

	practicumClient := practicum.NewClient(cfg.Endpoint, cfg.Credentials.PracticumToken, cfg.RequestTimeout)
	poller := app.NewPoller(
		practicumClient,
		telegram.NewTelebotAdapter(bot),
		journal,
		cfg.Verdicts,
		cfg.Credentials.TelegramChatID,
		time.Now().Unix(),
		log.WithField("component", "poller"),
	)

	pollScheduler, err := scheduler.NewPollScheduler(cfg.PollSchedule, log.WithField("component", "scheduler"))
	if err != nil {
		mainLogger.Fatalf("Could not create poll scheduler: %v", err)
	}

	telegram.RegisterBotCommands(ctx, bot, cfg.Credentials.TelegramChatID, poller, journal, log.WithField("component", "commands"))
	mainLogger.Info("Bot command handlers registered.")

	go bot.Start()

	// Blocks until SIGINT/SIGTERM
	pollScheduler.Run(ctx, poller.Poll)

	mainLogger.Info("Shutting down application...")
	bot.Stop()
	mainLogger.Info("Application shut down gracefully.")
}
