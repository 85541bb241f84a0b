package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"gptbot/pkg/telegram/keyboards"
)

// RandomFact asks the model for a fact using the "random" prompt alone. The
// flow is stateless, "Хочу ещё факт" just fires it again.
func RandomFact(loader ResourceLoader, completer Completer) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.Message.Chat.ID

		conv, err := loader.Conversation("random")
		if err != nil {
			replyInternalError(ctx, b, chatID, err)
			return
		}

		fact, err := completer.Complete(ctx, conv)
		if err != nil {
			replyTryLater(ctx, b, chatID, err)
			return
		}

		sendReply(ctx, b, chatID, loader, "random", fact, keyboards.RandomFact())
	}
}
