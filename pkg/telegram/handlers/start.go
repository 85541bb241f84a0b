package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Start greets the user with the main menu. Any session in progress is
// dropped.
func Start(sessions SessionStore, loader ResourceLoader) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.Message.Chat.ID

		sessions.Clear(chatID)
		sendMainMenu(ctx, b, chatID, loader)
	}
}
