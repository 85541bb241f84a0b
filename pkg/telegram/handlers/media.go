package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"gptbot/pkg/domain"
	"gptbot/pkg/keyword"
	"gptbot/pkg/telegram/keyboards"
)

// StartMedia opens the category menu.
func StartMedia(sessions SessionStore, loader ResourceLoader) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.Message.Chat.ID

		sessions.Save(chatID, &domain.MediaSession{Phase: domain.StageMediaSelectingCategory})
		sendScreen(ctx, b, chatID, loader, "media", keyboards.MediaCategories())
	}
}

// SelectCategory stores the category and offers its genres.
func SelectCategory(sessions SessionStore, loader ResourceLoader) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.CallbackQuery.Message.Message.Chat.ID

		data, err := domain.ParseMediaCallback(update.CallbackQuery.Data)
		if err != nil {
			replyInternalError(ctx, b, chatID, err)
			return
		}

		answerCallback(ctx, b, update.CallbackQuery.ID, "")

		sessions.Save(chatID, &domain.MediaSession{
			Phase:    domain.StageMediaSelectingGenre,
			Category: data.Category,
		})

		caption := fmt.Sprintf("Вы выбрали категорию: %s\nТеперь выберите жанр:", data.Category)
		sendReply(ctx, b, chatID, loader, "media", caption, keyboards.MediaGenres(data.Category))
	}
}

// recommend asks the model for one recommendation, excluding everything the
// user already disliked, and shows it with the verdict buttons.
func recommend(ctx context.Context, b *bot.Bot, chatID int64, media *domain.MediaSession, sessions SessionStore, loader ResourceLoader, completer Completer) {
	conv, err := loader.Conversation("media")
	if err != nil {
		replyInternalError(ctx, b, chatID, err)
		return
	}

	query := domain.MediaQuery(media.Category, media.Genre, media.Disliked)
	if err := conv.Append(domain.RoleUser, query); err != nil {
		replyInternalError(ctx, b, chatID, err)
		return
	}

	reply, err := completer.Complete(ctx, conv)
	if err != nil {
		replyTryLater(ctx, b, chatID, err)
		return
	}

	media.Phase = domain.StageMediaWaitingForVerdict
	media.Last = keyword.ParseRecommendation(reply)
	media.Conversation = conv
	sessions.Save(chatID, media)

	caption := fmt.Sprintf("%s\n%s", media.Last.Title, media.Last.Description)
	sendReply(ctx, b, chatID, loader, "media", caption, keyboards.MediaActions(media.Category, media.Genre))
}

// SelectGenre stores the genre and issues the first recommendation.
func SelectGenre(sessions SessionStore, loader ResourceLoader, completer Completer) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.CallbackQuery.Message.Message.Chat.ID

		data, err := domain.ParseMediaCallback(update.CallbackQuery.Data)
		if err != nil {
			replyInternalError(ctx, b, chatID, err)
			return
		}

		answerCallback(ctx, b, update.CallbackQuery.ID, "")

		session, _ := sessions.Get(chatID)
		media, ok := session.(*domain.MediaSession)
		if !ok {
			media = &domain.MediaSession{Category: data.Category}
		}
		media.Genre = data.Genre

		recommend(ctx, b, chatID, media, sessions, loader, completer)
	}
}

// Dislike records the last title as unwanted and asks for another one.
func Dislike(sessions SessionStore, loader ResourceLoader, completer Completer) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.CallbackQuery.Message.Message.Chat.ID

		session, ok := sessions.Get(chatID)
		if !ok {
			return
		}
		media, ok := session.(*domain.MediaSession)
		if !ok {
			return
		}

		answerCallback(ctx, b, update.CallbackQuery.ID, "Генерирую новую рекомендацию...")

		if media.Last.Title != "" {
			media.Disliked = append(media.Disliked, media.Last.Title)
		}

		recommend(ctx, b, chatID, media, sessions, loader, completer)
	}
}

// FinishMedia ends the flow and returns to the main menu.
func FinishMedia(sessions SessionStore, loader ResourceLoader) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.CallbackQuery.Message.Message.Chat.ID

		answerCallback(ctx, b, update.CallbackQuery.ID, "Спасибо за использование рекомендаций!")
		sessions.Clear(chatID)
		sendMainMenu(ctx, b, chatID, loader)
	}
}
