package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"

	"remindbot/internal/bot"
	"remindbot/internal/config"
	"remindbot/internal/database"
	"remindbot/internal/scheduler"
	"remindbot/internal/store"
	"remindbot/internal/telegram"
)

func main() {
	logger := log.New(os.Stdout, "[remindbot] ", log.LstdFlags|log.Lshortfile)
	cfg := config.Load()

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("database init failed: %v", err)
	}
	reminderStore := store.New(db)

	tg, err := telegram.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatalf("telegram init failed: %v", err)
	}
	logger.Printf("authorized on Telegram account: %s", tg.Username())

	reminderBot := bot.New(cfg, reminderStore, tg, logger)

	sched := scheduler.New(reminderStore, tg, cfg.LocalTimezone, logger)
	if err := sched.Start(); err != nil {
		logger.Fatalf("scheduler start: %v", err)
	}

	updates, err := tg.Updates()
	if err != nil {
		logger.Fatalf("telegram updates: %v", err)
	}

	go func() {
		logger.Println("waiting for messages...")
		for update := range updates {
			handleUpdate(reminderBot, update, logger)
		}
	}()

	waitForShutdown(tg, sched, logger)
}

// handleUpdate guards against non-message updates (callbacks, channel
// posts) before handing the text to the router.
func handleUpdate(reminderBot *bot.Bot, update tgbotapi.Update, logger *log.Logger) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	logger.Printf("received message from chat %d: %s", chatID, update.Message.Text)
	reminderBot.HandleMessage(chatID, update.Message.Text)
}

func waitForShutdown(tg *telegram.Client, sched *scheduler.Scheduler, logger *log.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Println("shutting down...")

	tg.Stop()
	sched.Stop()
}
