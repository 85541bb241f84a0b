package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"gptbot/pkg/domain"
	"gptbot/pkg/telegram/keyboards"
)

// StartTranslator opens the direction menu.
func StartTranslator(sessions SessionStore, loader ResourceLoader) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.Message.Chat.ID

		sessions.Save(chatID, &domain.TranslatorSession{Phase: domain.StageTranslatorSelectingDirection})
		sendScreen(ctx, b, chatID, loader, "translator", keyboards.TranslateDirections())
	}
}

// SelectDirection stores the chosen direction and asks for the text.
func SelectDirection(sessions SessionStore) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.CallbackQuery.Message.Message.Chat.ID

		data, err := domain.ParseTranslatorCallback(update.CallbackQuery.Data)
		if err != nil {
			replyInternalError(ctx, b, chatID, err)
			return
		}

		answerCallback(ctx, b, update.CallbackQuery.ID, "")

		sessions.Save(chatID, &domain.TranslatorSession{
			Phase:     domain.StageTranslatorWaitingForText,
			Direction: data.Direction,
		})

		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   fmt.Sprintf("Введите текст для перевода с %s:", data.Direction.Text()),
		})
	}
}

// TranslateText translates a single message. Each translation is a fresh
// single-shot conversation, the session ends after the reply.
func TranslateText(sessions SessionStore, loader ResourceLoader, completer Completer) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.Message.Chat.ID

		session, ok := sessions.Get(chatID)
		if !ok {
			return
		}
		translator, ok := session.(*domain.TranslatorSession)
		if !ok {
			return
		}

		conv, err := loader.Conversation(string(translator.Direction))
		if err != nil {
			replyInternalError(ctx, b, chatID, err)
			return
		}
		if err := conv.Append(domain.RoleUser, update.Message.Text); err != nil {
			replyInternalError(ctx, b, chatID, err)
			return
		}

		translation, err := completer.Complete(ctx, conv)
		if err != nil {
			replyTryLater(ctx, b, chatID, err)
			return
		}

		sessions.Clear(chatID)

		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        "Перевод:\n" + translation,
			ReplyMarkup: keyboards.EndChat(),
		})
	}
}
