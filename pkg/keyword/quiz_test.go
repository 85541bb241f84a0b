package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCorrectAnswer(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  bool
	}{
		{"correct", "Правильно! Это столица Франции.", true},
		{"correct lowercase", "правильно! так и есть.", true},
		{"correct mid-sentence", "Да, правильно! Отличный ответ.", true},
		{"incorrect", "Неправильно! Верный ответ: 42.", false},
		{"incorrect lowercase", "неправильно! Попробуйте еще раз.", false},
		{"both markers", "Неправильно! Хотя частично правильно!", false},
		{"no markers", "Интересный вопрос.", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCorrectAnswer(tt.reply))
		})
	}
}
