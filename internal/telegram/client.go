package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

// Client wraps the Telegram Bot API operations required by the bot.
type Client struct {
	bot *tgbotapi.BotAPI
}

// New authenticates against the Telegram Bot API.
func New(token string) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connect to telegram: %w", err)
	}
	return &Client{bot: bot}, nil
}

// Username returns the authorized bot account name.
func (c *Client) Username() string {
	return c.bot.Self.UserName
}

// Send delivers text to a chat. Best effort: the caller logs failures
// and moves on, nothing is reported back to the chat.
func (c *Client) Send(chatID int64, text string) error {
	if _, err := c.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("send to chat %d: %w", chatID, err)
	}
	return nil
}

// Updates opens the long-polling update channel.
func (c *Client) Updates() (tgbotapi.UpdatesChannel, error) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates, err := c.bot.GetUpdatesChan(u)
	if err != nil {
		return nil, fmt.Errorf("get updates channel: %w", err)
	}
	return updates, nil
}

// Stop closes the update channel; the consuming loop drains and exits.
func (c *Client) Stop() {
	c.bot.StopReceivingUpdates()
}
