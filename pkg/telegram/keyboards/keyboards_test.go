package keyboards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gptbot/pkg/domain"
	"gptbot/pkg/resource"
)

func TestMainMenu(t *testing.T) {
	kb := MainMenu()

	require.Len(t, kb.Keyboard, 3)
	assert.Equal(t, "/random", kb.Keyboard[0][0].Text)
	assert.Equal(t, "/media", kb.Keyboard[2][1].Text)
	assert.True(t, kb.ResizeKeyboard)
	assert.False(t, kb.OneTimeKeyboard)
}

func TestMainMenuReturnsFreshValue(t *testing.T) {
	first := MainMenu()
	first.Keyboard[0][0].Text = "mutated"

	second := MainMenu()
	assert.Equal(t, "/random", second.Keyboard[0][0].Text)
}

func TestRandomFact(t *testing.T) {
	kb := RandomFact()

	require.Len(t, kb.Keyboard, 2)
	assert.Equal(t, domain.TriggerAnotherFact, kb.Keyboard[0][0].Text)
	assert.Equal(t, domain.TriggerFinish, kb.Keyboard[1][0].Text)
}

func TestEndChat(t *testing.T) {
	kb := EndChat()

	require.Len(t, kb.Keyboard, 1)
	assert.Equal(t, domain.TriggerFinish, kb.Keyboard[0][0].Text)
	assert.True(t, kb.OneTimeKeyboard)
}

func TestEndTalk(t *testing.T) {
	kb := EndTalk()

	require.Len(t, kb.Keyboard, 1)
	assert.Equal(t, domain.TriggerSayGoodbye, kb.Keyboard[0][0].Text)
}

func TestCelebrities(t *testing.T) {
	kb := Celebrities([]resource.Celebrity{
		{Key: "talk_einstein", Name: "Альберт Эйнштейн"},
		{Key: "talk_mercury", Name: "Фредди Меркьюри"},
	})

	require.Len(t, kb.InlineKeyboard, 2)
	assert.Equal(t, "Альберт Эйнштейн", kb.InlineKeyboard[0][0].Text)
	assert.Equal(t, "celebrity:select:talk_einstein", kb.InlineKeyboard[0][0].CallbackData)
}

func TestQuizTopics(t *testing.T) {
	kb := QuizTopics()

	require.Len(t, kb.InlineKeyboard, len(domain.QuizTopics))
	for i, topic := range domain.QuizTopics {
		assert.Equal(t, topic.Label, kb.InlineKeyboard[i][0].Text)

		parsed, err := domain.ParseQuizCallback(kb.InlineKeyboard[i][0].CallbackData)
		require.NoError(t, err)
		assert.Equal(t, domain.QuizActionSelectTopic, parsed.Action)
		assert.Equal(t, topic.Key, parsed.Topic)
	}
}

func TestQuizActions(t *testing.T) {
	kb := QuizActions("quiz_math", "Математика")

	require.Len(t, kb.InlineKeyboard, 2)
	require.Len(t, kb.InlineKeyboard[0], 2)

	next, err := domain.ParseQuizCallback(kb.InlineKeyboard[0][0].CallbackData)
	require.NoError(t, err)
	assert.Equal(t, domain.QuizActionNextQuestion, next.Action)
	assert.Equal(t, "quiz_math", next.Topic)
	assert.Equal(t, "Математика", next.TopicName)
}

func TestTranslateDirections(t *testing.T) {
	kb := TranslateDirections()

	require.Len(t, kb.InlineKeyboard, 1)
	require.Len(t, kb.InlineKeyboard[0], 2)
	assert.Equal(t, "ENG -> RUS", kb.InlineKeyboard[0][0].Text)
	assert.Equal(t, "RUS -> ENG", kb.InlineKeyboard[0][1].Text)
}

func TestMediaGenres(t *testing.T) {
	kb := MediaGenres("movies")

	// 6 genres, 2 per row
	require.Len(t, kb.InlineKeyboard, 3)

	parsed, err := domain.ParseMediaCallback(kb.InlineKeyboard[0][0].CallbackData)
	require.NoError(t, err)
	assert.Equal(t, domain.MediaActionSelectGenre, parsed.Action)
	assert.Equal(t, "movies", parsed.Category)
	assert.Equal(t, "drama", parsed.Genre)
}

func TestMediaGenresUnknownCategory(t *testing.T) {
	kb := MediaGenres("podcasts")

	assert.Empty(t, kb.InlineKeyboard)
}

func TestMediaActions(t *testing.T) {
	kb := MediaActions("movies", "drama")

	require.Len(t, kb.InlineKeyboard, 1)
	require.Len(t, kb.InlineKeyboard[0], 2)

	dislike, err := domain.ParseMediaCallback(kb.InlineKeyboard[0][0].CallbackData)
	require.NoError(t, err)
	assert.Equal(t, domain.MediaActionDislike, dislike.Action)
	assert.Equal(t, "movies", dislike.Category)
	assert.Equal(t, "drama", dislike.Genre)
}
