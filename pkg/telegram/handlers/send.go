package handlers

import (
	"bytes"
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"gptbot/pkg/logger"
	"gptbot/pkg/telegram/keyboards"
)

// Telegram caps photo captions at 1024 characters.
const maxCaptionLength = 1024

const tryLaterText = "Не удалось получить ответ. Попробуйте позже."
const internalErrorText = "Произошла ошибка. Попробуйте еще раз."

// sendScreen shows a flow's opening screen: its image with the message as a
// caption, or the message alone when the image is missing or the caption
// would overflow.
func sendScreen(ctx context.Context, b *bot.Bot, chatID int64, loader ResourceLoader, name string, markup models.ReplyMarkup) {
	text, _ := loader.Text(name)

	image, ok := loader.Image(name)
	if !ok {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        text,
			ReplyMarkup: markup,
		})
		return
	}

	if utf8.RuneCountInString(text) > maxCaptionLength {
		b.SendPhoto(ctx, &bot.SendPhotoParams{
			ChatID: chatID,
			Photo:  &models.InputFileUpload{Filename: name + ".jpg", Data: bytes.NewReader(image)},
		})
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        text,
			ReplyMarkup: markup,
		})
		return
	}

	b.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID:      chatID,
		Photo:       &models.InputFileUpload{Filename: name + ".jpg", Data: bytes.NewReader(image)},
		Caption:     text,
		ReplyMarkup: markup,
	})
}

// sendReply delivers a model reply: the flow's image with the reply as a
// caption, falling back to plain text when the image is missing or the
// caption would overflow.
func sendReply(ctx context.Context, b *bot.Bot, chatID int64, loader ResourceLoader, imageName, caption string, markup models.ReplyMarkup) {
	sendReplyParsed(ctx, b, chatID, loader, imageName, caption, markup, "")
}

func sendReplyParsed(ctx context.Context, b *bot.Bot, chatID int64, loader ResourceLoader, imageName, caption string, markup models.ReplyMarkup, parseMode models.ParseMode) {
	image, ok := loader.Image(imageName)
	if !ok || utf8.RuneCountInString(caption) > maxCaptionLength {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        caption,
			ReplyMarkup: markup,
			ParseMode:   parseMode,
		})
		return
	}

	b.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID:      chatID,
		Photo:       &models.InputFileUpload{Filename: imageName + ".jpg", Data: bytes.NewReader(image)},
		Caption:     caption,
		ReplyMarkup: markup,
		ParseMode:   parseMode,
	})
}

func sendMainMenu(ctx context.Context, b *bot.Bot, chatID int64, loader ResourceLoader) {
	sendScreen(ctx, b, chatID, loader, "main", keyboards.MainMenu())
}

func replyTryLater(ctx context.Context, b *bot.Bot, chatID int64, err error) {
	slog.ErrorContext(ctx, "Completion failed", logger.Err(err))
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   tryLaterText,
	})
}

func replyInternalError(ctx context.Context, b *bot.Bot, chatID int64, err error) {
	slog.ErrorContext(ctx, "Handler failed", logger.Err(err))
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   internalErrorText,
	})
}

func answerCallback(ctx context.Context, b *bot.Bot, callbackID, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
	})
}
