package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"gptbot/pkg/domain"
	"gptbot/pkg/telegram/keyboards"
)

// ShowCelebrities offers the persona menu built from the talk_* prompts.
func ShowCelebrities(loader ResourceLoader) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.Message.Chat.ID

		celebrities, err := loader.Celebrities()
		if err != nil {
			replyInternalError(ctx, b, chatID, err)
			return
		}

		sendScreen(ctx, b, chatID, loader, "talk", keyboards.Celebrities(celebrities))
	}
}

// SelectCelebrity starts a role-play session with the tapped persona.
func SelectCelebrity(sessions SessionStore, loader ResourceLoader) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.CallbackQuery.Message.Message.Chat.ID

		data, err := domain.ParseCelebrityCallback(update.CallbackQuery.Data)
		if err != nil {
			replyInternalError(ctx, b, chatID, err)
			return
		}

		celebrity, ok := loader.Celebrity(data.PromptKey)
		if !ok {
			replyInternalError(ctx, b, chatID, fmt.Errorf("%w: unknown celebrity %q", domain.ErrResource, data.PromptKey))
			return
		}

		conv, err := loader.Conversation(celebrity.Key)
		if err != nil {
			replyInternalError(ctx, b, chatID, err)
			return
		}

		answerCallback(ctx, b, update.CallbackQuery.ID, "С тобой говорит "+celebrity.Name)

		sessions.Save(chatID, &domain.CelebritySession{
			PromptKey:    celebrity.Key,
			Name:         celebrity.Name,
			Conversation: conv,
		})

		sendReply(ctx, b, chatID, loader, celebrity.Key, "Задайте свой вопрос", keyboards.EndTalk())
	}
}

// CelebrityMessage runs one round of the role-play conversation.
func CelebrityMessage(sessions SessionStore, loader ResourceLoader, completer Completer) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.Message.Chat.ID

		session, ok := sessions.Get(chatID)
		if !ok {
			return
		}
		talk, ok := session.(*domain.CelebritySession)
		if !ok {
			return
		}

		if err := talk.Conversation.Append(domain.RoleUser, update.Message.Text); err != nil {
			replyInternalError(ctx, b, chatID, err)
			return
		}

		reply, err := completer.Complete(ctx, talk.Conversation)
		if err != nil {
			replyTryLater(ctx, b, chatID, err)
			return
		}

		talk.Conversation.Append(domain.RoleAssistant, reply)
		sessions.Save(chatID, talk)

		sendReply(ctx, b, chatID, loader, talk.PromptKey, reply, keyboards.EndTalk())
	}
}
