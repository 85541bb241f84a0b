package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gptbot/pkg/domain"
)

func TestParseRecommendation(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  domain.Recommendation
	}{
		{
			name:  "both fields",
			reply: "Название: Дюна\nОписание: Эпическая сага о пустынной планете.",
			want:  domain.Recommendation{Title: "Дюна", Description: "Эпическая сага о пустынной планете."},
		},
		{
			name:  "extra lines around fields",
			reply: "Вот рекомендация:\n\nНазвание: Солярис\nОписание: Роман о контакте с чужим разумом.\nПриятного чтения!",
			want:  domain.Recommendation{Title: "Солярис", Description: "Роман о контакте с чужим разумом."},
		},
		{
			name:  "title only",
			reply: "Название: Кин-дза-дза!",
			want:  domain.Recommendation{Title: "Кин-дза-дза!"},
		},
		{
			name:  "last occurrence wins",
			reply: "Название: Первое\nНазвание: Второе\nОписание: Описание второго.",
			want:  domain.Recommendation{Title: "Второе", Description: "Описание второго."},
		},
		{
			name:  "no markers",
			reply: "Не могу ничего посоветовать.",
			want:  domain.Recommendation{},
		},
		{
			name:  "empty",
			reply: "",
			want:  domain.Recommendation{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRecommendation(tt.reply))
		})
	}
}
