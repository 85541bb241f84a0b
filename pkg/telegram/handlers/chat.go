package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"gptbot/pkg/domain"
	"gptbot/pkg/render"
	"gptbot/pkg/telegram/keyboards"
)

// StartChat opens the free-form chat flow and seeds its conversation with
// the "gpt" prompt.
func StartChat(sessions SessionStore, loader ResourceLoader) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.Message.Chat.ID

		conv, err := loader.Conversation("gpt")
		if err != nil {
			replyInternalError(ctx, b, chatID, err)
			return
		}

		sessions.Save(chatID, &domain.ChatSession{Conversation: conv})
		sendScreen(ctx, b, chatID, loader, "gpt", nil)
	}
}

// ChatMessage runs one round of the chat: user turn in, model reply out. On
// a model failure the session keeps its previous turns so the user can retry.
func ChatMessage(sessions SessionStore, loader ResourceLoader, completer Completer) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.Message.Chat.ID

		session, ok := sessions.Get(chatID)
		if !ok {
			return
		}
		chat, ok := session.(*domain.ChatSession)
		if !ok {
			return
		}

		if err := chat.Conversation.Append(domain.RoleUser, update.Message.Text); err != nil {
			replyInternalError(ctx, b, chatID, err)
			return
		}

		reply, err := completer.Complete(ctx, chat.Conversation)
		if err != nil {
			replyTryLater(ctx, b, chatID, err)
			return
		}

		chat.Conversation.Append(domain.RoleAssistant, reply)
		sessions.Save(chatID, chat)

		sendReplyParsed(ctx, b, chatID, loader, "gpt", render.ToHTML(reply), keyboards.EndChat(), models.ParseModeHTML)
	}
}
