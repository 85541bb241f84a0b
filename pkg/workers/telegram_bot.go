package workers

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
)

type telegramBot struct {
	bot *bot.Bot
}

func NewTelegramBot(b *bot.Bot) *telegramBot {
	return &telegramBot{bot: b}
}

func (t *telegramBot) Name() string { return "telegram_bot" }

// Start runs the long-polling loop until the context is cancelled.
func (t *telegramBot) Start(ctx context.Context) error {
	slog.Info("Starting worker", "name", t.Name())
	defer slog.Info("Worker stopped", "name", t.Name())

	t.bot.Start(ctx)

	return nil
}
