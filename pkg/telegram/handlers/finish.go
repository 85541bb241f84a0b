package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Finish handles the "Закончить" and "Попрощаться!" triggers: drop the
// session, back to the main menu.
func Finish(sessions SessionStore, loader ResourceLoader) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.Message.Chat.ID

		sessions.Clear(chatID)
		sendMainMenu(ctx, b, chatID, loader)
	}
}
