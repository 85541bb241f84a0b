package keyboards

import (
	"github.com/go-telegram/bot/models"
	"github.com/samber/lo"

	"gptbot/pkg/domain"
	"gptbot/pkg/resource"
)

// Every constructor returns a fresh markup value. Handlers never share or
// mutate a previously built keyboard.

func replyKeyboard(placeholder string, oneTime bool, rows ...[]string) *models.ReplyKeyboardMarkup {
	keyboard := lo.Map(rows, func(row []string, _ int) []models.KeyboardButton {
		return lo.Map(row, func(text string, _ int) models.KeyboardButton {
			return models.KeyboardButton{Text: text}
		})
	})

	return &models.ReplyKeyboardMarkup{
		Keyboard:              keyboard,
		ResizeKeyboard:        true,
		OneTimeKeyboard:       oneTime,
		InputFieldPlaceholder: placeholder,
	}
}

func MainMenu() *models.ReplyKeyboardMarkup {
	return replyKeyboard("Выберете пункт меню...", false,
		[]string{"/random", "/gpt"},
		[]string{"/talk", "/quiz"},
		[]string{"/translator", "/media"},
	)
}

func RandomFact() *models.ReplyKeyboardMarkup {
	return replyKeyboard("Выберете пункт меню...", false,
		[]string{domain.TriggerAnotherFact},
		[]string{domain.TriggerFinish},
	)
}

func EndChat() *models.ReplyKeyboardMarkup {
	return replyKeyboard("Задайте свой вопрос...", true,
		[]string{domain.TriggerFinish},
	)
}

func EndTalk() *models.ReplyKeyboardMarkup {
	return replyKeyboard("Задайте свой вопрос...", true,
		[]string{domain.TriggerSayGoodbye},
	)
}

func Celebrities(celebrities []resource.Celebrity) *models.InlineKeyboardMarkup {
	buttons := lo.Map(celebrities, func(c resource.Celebrity, _ int) models.InlineKeyboardButton {
		return models.InlineKeyboardButton{
			Text:         c.Name,
			CallbackData: domain.CelebrityCallback{PromptKey: c.Key}.Pack(),
		}
	})

	return &models.InlineKeyboardMarkup{InlineKeyboard: lo.Chunk(buttons, 1)}
}

func QuizTopics() *models.InlineKeyboardMarkup {
	buttons := lo.Map(domain.QuizTopics, func(topic domain.Option, _ int) models.InlineKeyboardButton {
		return models.InlineKeyboardButton{
			Text: topic.Label,
			CallbackData: domain.QuizCallback{
				Action:    domain.QuizActionSelectTopic,
				Topic:     topic.Key,
				TopicName: topic.Label,
			}.Pack(),
		}
	})

	return &models.InlineKeyboardMarkup{InlineKeyboard: lo.Chunk(buttons, 1)}
}

func QuizActions(topic, topicName string) *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{
					Text:         "Дальше",
					CallbackData: domain.QuizCallback{Action: domain.QuizActionNextQuestion, Topic: topic, TopicName: topicName}.Pack(),
				},
				{
					Text:         "Сменить тему",
					CallbackData: domain.QuizCallback{Action: domain.QuizActionChangeTopic}.Pack(),
				},
			},
			{
				{
					Text:         "Закончить",
					CallbackData: domain.QuizCallback{Action: domain.QuizActionFinish}.Pack(),
				},
			},
		},
	}
}

func TranslateDirections() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{
					Text:         "ENG -> RUS",
					CallbackData: domain.TranslatorCallback{Direction: domain.DirectionEngRus}.Pack(),
				},
				{
					Text:         "RUS -> ENG",
					CallbackData: domain.TranslatorCallback{Direction: domain.DirectionRusEng}.Pack(),
				},
			},
		},
	}
}

func MediaCategories() *models.InlineKeyboardMarkup {
	buttons := lo.Map(domain.MediaCategories, func(category domain.Option, _ int) models.InlineKeyboardButton {
		return models.InlineKeyboardButton{
			Text: category.Label,
			CallbackData: domain.MediaCallback{
				Action:   domain.MediaActionSelectCategory,
				Category: category.Key,
			}.Pack(),
		}
	})

	return &models.InlineKeyboardMarkup{InlineKeyboard: lo.Chunk(buttons, 1)}
}

func MediaGenres(category string) *models.InlineKeyboardMarkup {
	buttons := lo.Map(domain.MediaGenres[category], func(genre domain.Option, _ int) models.InlineKeyboardButton {
		return models.InlineKeyboardButton{
			Text: genre.Label,
			CallbackData: domain.MediaCallback{
				Action:   domain.MediaActionSelectGenre,
				Category: category,
				Genre:    genre.Key,
			}.Pack(),
		}
	})

	return &models.InlineKeyboardMarkup{InlineKeyboard: lo.Chunk(buttons, 2)}
}

func MediaActions(category, genre string) *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{
					Text:         "Не нравится",
					CallbackData: domain.MediaCallback{Action: domain.MediaActionDislike, Category: category, Genre: genre}.Pack(),
				},
				{
					Text:         "Закончить",
					CallbackData: domain.MediaCallback{Action: domain.MediaActionFinish}.Pack(),
				},
			},
		},
	}
}
