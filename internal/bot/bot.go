// Package bot routes inbound chat messages: the /start command gets the
// help text, everything else is treated as a reminder request.
package bot

import (
	"errors"
	"log"

	"remindbot/internal/config"
	"remindbot/internal/model"
	"remindbot/internal/parser"
	"remindbot/internal/store"
)

// Reply texts are fixed and must stay byte-for-byte stable: existing
// users and downstream tooling match on them.
const (
	startCommand = "/start"

	greetingMessage = "Привет! " +
		"\nЧтобы создать напоминание, напиши: " +
		"\nчисло.месяц.год точное:время текст напоминания" +
		"\nНапример:" +
		"\n05.01.2022 20:00 Сесть за домашнюю работу"
	createdMessage     = "Напоминание создано"
	badFormatMessage   = "Неправильный формат напоминания"
	badDateTimeMessage = "Неправильный формат даты или времени"
)

// Sender delivers outbound text to a chat.
type Sender interface {
	Send(chatID int64, text string) error
}

// Bot coordinates parsing, persistence and acknowledgment replies.
type Bot struct {
	cfg    *config.Config
	store  *store.Store
	sender Sender
	logger *log.Logger
}

// New creates a fully configured Bot instance.
func New(cfg *config.Config, st *store.Store, sender Sender, logger *log.Logger) *Bot {
	return &Bot{
		cfg:    cfg,
		store:  st,
		sender: sender,
		logger: logger,
	}
}

// HandleMessage processes one inbound message. Every failure is
// contained here: a bad message, a store error or a failed reply never
// stops the update loop from handling the next message.
func (b *Bot) HandleMessage(chatID int64, text string) {
	// Exact match only; "/start extra" goes through the parser like
	// any other message.
	if text == startCommand {
		b.reply(chatID, greetingMessage)
		return
	}
	b.createReminder(chatID, text)
}

func (b *Bot) createReminder(chatID int64, text string) {
	parsed, err := parser.Parse(text, b.cfg.LocalTimezone)
	switch {
	case err == nil:
	case errors.Is(err, parser.ErrDateTime):
		b.reply(chatID, badDateTimeMessage)
		return
	default:
		b.reply(chatID, badFormatMessage)
		return
	}

	reminder := &model.Reminder{
		ChatID: chatID,
		Note:   parsed.Note,
		DueAt:  parsed.DueAt,
	}
	if err := b.store.Create(reminder); err != nil {
		b.logger.Printf("bot: save reminder for chat %d: %v", chatID, err)
		return
	}

	b.logger.Printf("bot: reminder %d created for chat %d, due %s",
		reminder.ID, chatID, reminder.DueAt.Format("02.01.2006 15:04"))
	b.reply(chatID, createdMessage)
}

func (b *Bot) reply(chatID int64, text string) {
	if err := b.sender.Send(chatID, text); err != nil {
		b.logger.Printf("bot: reply to chat %d: %v", chatID, err)
	}
}
