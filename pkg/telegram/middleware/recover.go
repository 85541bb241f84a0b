package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"gptbot/pkg/logger"
)

// Recover keeps a panicking handler from killing the whole update loop.
func Recover(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		defer func() {
			if r := recover(); r != nil {
				slog.ErrorContext(ctx, "Handler panicked",
					logger.Err(fmt.Errorf("%v", r)), "stack", string(debug.Stack()))

				var chatID int64
				switch {
				case update.Message != nil:
					chatID = update.Message.Chat.ID
				case update.CallbackQuery != nil:
					chatID = update.CallbackQuery.Message.Message.Chat.ID
				}
				if chatID != 0 {
					b.SendMessage(ctx, &bot.SendMessageParams{
						ChatID: chatID,
						Text:   "Произошла ошибка. Попробуйте еще раз.",
					})
				}
			}
		}()

		next(ctx, b, update)
	}
}
