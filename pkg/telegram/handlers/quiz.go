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

func startQuiz(ctx context.Context, b *bot.Bot, chatID int64, sessions SessionStore, loader ResourceLoader) {
	sessions.Save(chatID, &domain.QuizSession{Phase: domain.StageQuizSelectingTopic})
	sendScreen(ctx, b, chatID, loader, "quiz", keyboards.QuizTopics())
}

// StartQuiz opens the topic menu.
func StartQuiz(sessions SessionStore, loader ResourceLoader) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		startQuiz(ctx, b, update.Message.Chat.ID, sessions, loader)
	}
}

// SelectQuizTopic seeds the quiz conversation with the chosen topic and asks
// the first question. The score starts at zero.
func SelectQuizTopic(sessions SessionStore, loader ResourceLoader, completer Completer) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.CallbackQuery.Message.Message.Chat.ID

		data, err := domain.ParseQuizCallback(update.CallbackQuery.Data)
		if err != nil {
			replyInternalError(ctx, b, chatID, err)
			return
		}

		conv, err := loader.Conversation("quiz")
		if err != nil {
			replyInternalError(ctx, b, chatID, err)
			return
		}
		if err := conv.Append(domain.RoleUser, data.Topic); err != nil {
			replyInternalError(ctx, b, chatID, err)
			return
		}

		answerCallback(ctx, b, update.CallbackQuery.ID, fmt.Sprintf("Вы выбрали тему %s!", data.TopicName))

		question, err := completer.Complete(ctx, conv)
		if err != nil {
			replyTryLater(ctx, b, chatID, err)
			return
		}
		conv.Append(domain.RoleAssistant, question)

		sessions.Save(chatID, &domain.QuizSession{
			Phase:        domain.StageQuizWaitingForAnswer,
			Topic:        data.Topic,
			TopicName:    data.TopicName,
			Conversation: conv,
		})

		sendReply(ctx, b, chatID, loader, "quiz", question, nil)
	}
}

// QuizAnswer grades the user's answer, updates the score and shows the
// verdict with the next-step buttons.
func QuizAnswer(sessions SessionStore, loader ResourceLoader, completer Completer) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.Message.Chat.ID

		session, ok := sessions.Get(chatID)
		if !ok {
			return
		}
		quiz, ok := session.(*domain.QuizSession)
		if !ok {
			return
		}

		if err := quiz.Conversation.Append(domain.RoleUser, update.Message.Text); err != nil {
			replyInternalError(ctx, b, chatID, err)
			return
		}

		verdict, err := completer.Complete(ctx, quiz.Conversation)
		if err != nil {
			replyTryLater(ctx, b, chatID, err)
			return
		}

		if keyword.IsCorrectAnswer(verdict) {
			quiz.Score++
		}
		quiz.Conversation.Append(domain.RoleAssistant, verdict)
		quiz.Phase = domain.StageQuizWaitingForButton
		sessions.Save(chatID, quiz)

		caption := fmt.Sprintf("Ваш счет: %d\n%s", quiz.Score, verdict)
		sendReply(ctx, b, chatID, loader, "quiz", caption, keyboards.QuizActions(quiz.Topic, quiz.TopicName))
	}
}

// NextQuestion continues the current topic with another question.
func NextQuestion(sessions SessionStore, loader ResourceLoader, completer Completer) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.CallbackQuery.Message.Message.Chat.ID

		session, ok := sessions.Get(chatID)
		if !ok {
			return
		}
		quiz, ok := session.(*domain.QuizSession)
		if !ok {
			return
		}

		if err := quiz.Conversation.Append(domain.RoleUser, domain.QuizMore); err != nil {
			replyInternalError(ctx, b, chatID, err)
			return
		}

		question, err := completer.Complete(ctx, quiz.Conversation)
		if err != nil {
			replyTryLater(ctx, b, chatID, err)
			return
		}

		quiz.Conversation.Append(domain.RoleAssistant, question)
		quiz.Phase = domain.StageQuizWaitingForAnswer
		sessions.Save(chatID, quiz)

		answerCallback(ctx, b, update.CallbackQuery.ID, "Продолжаем тему "+quiz.TopicName)
		sendReply(ctx, b, chatID, loader, "quiz", question, nil)
	}
}

// ChangeTopic drops the current quiz and reopens the topic menu.
func ChangeTopic(sessions SessionStore, loader ResourceLoader) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.CallbackQuery.Message.Message.Chat.ID

		answerCallback(ctx, b, update.CallbackQuery.ID, "")
		sessions.Clear(chatID)
		startQuiz(ctx, b, chatID, sessions, loader)
	}
}

// FinishQuiz ends the quiz and returns to the main menu.
func FinishQuiz(sessions SessionStore, loader ResourceLoader) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID := update.CallbackQuery.Message.Message.Chat.ID

		answerCallback(ctx, b, update.CallbackQuery.ID, "")
		sessions.Clear(chatID)
		sendMainMenu(ctx, b, chatID, loader)
	}
}
