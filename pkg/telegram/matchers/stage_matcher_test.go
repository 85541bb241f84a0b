package matchers

import (
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"

	"gptbot/pkg/domain"
)

type fakeProvider struct {
	sessions map[int64]domain.Session
}

func (f *fakeProvider) Get(chatID int64) (domain.Session, bool) {
	s, ok := f.sessions[chatID]
	return s, ok
}

func textUpdate(chatID int64, text string) *models.Update {
	return &models.Update{
		Message: &models.Message{
			Text: text,
			Chat: models.Chat{ID: chatID},
		},
	}
}

func TestStageText(t *testing.T) {
	provider := &fakeProvider{sessions: map[int64]domain.Session{
		1: &domain.ChatSession{},
		2: &domain.QuizSession{Phase: domain.StageQuizWaitingForAnswer},
	}}

	match := StageText(provider, domain.StageChatWaitingForRequest)

	tests := []struct {
		name   string
		update *models.Update
		want   bool
	}{
		{"session at stage", textUpdate(1, "вопрос"), true},
		{"session at other stage", textUpdate(2, "ответ"), false},
		{"no session", textUpdate(3, "текст"), false},
		{"command excluded", textUpdate(1, "/start"), false},
		{"finish trigger excluded", textUpdate(1, "Закончить"), false},
		{"fact trigger excluded", textUpdate(1, "Хочу ещё факт"), false},
		{"goodbye trigger excluded", textUpdate(1, "Попрощаться!"), false},
		{"empty text", textUpdate(1, ""), false},
		{"no message", &models.Update{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, match(tt.update))
		})
	}
}

func TestStageTextSeveralStages(t *testing.T) {
	provider := &fakeProvider{sessions: map[int64]domain.Session{
		1: &domain.QuizSession{Phase: domain.StageQuizWaitingForAnswer},
		2: &domain.QuizSession{Phase: domain.StageQuizWaitingForButton},
	}}

	match := StageText(provider, domain.StageQuizWaitingForAnswer, domain.StageQuizWaitingForButton)

	assert.True(t, match(textUpdate(1, "ответ")))
	assert.True(t, match(textUpdate(2, "ответ")))
}
