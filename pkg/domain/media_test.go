package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaQuery(t *testing.T) {
	tests := []struct {
		name     string
		category string
		genre    string
		disliked []string
		want     string
	}{
		{
			name:     "no exclusions",
			category: "movies",
			genre:    "drama",
			want:     "Категория: movies\nЖанр: drama",
		},
		{
			name:     "one exclusion",
			category: "books",
			genre:    "detective",
			disliked: []string{"Шерлок Холмс"},
			want:     "Категория: books\nЖанр: detective\nНе предлагай: Шерлок Холмс",
		},
		{
			name:     "several exclusions joined with comma",
			category: "movies",
			genre:    "sci-fi",
			disliked: []string{"Дюна", "Интерстеллар"},
			want:     "Категория: movies\nЖанр: sci-fi\nНе предлагай: Дюна, Интерстеллар",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MediaQuery(tt.category, tt.genre, tt.disliked))
		})
	}
}

func TestMediaGenresCoverAllCategories(t *testing.T) {
	for _, category := range MediaCategories {
		assert.NotEmpty(t, MediaGenres[category.Key], "category %q has no genres", category.Key)
	}
}

func TestQuizTopicName(t *testing.T) {
	name, ok := QuizTopicName("quiz_math")
	assert.True(t, ok)
	assert.Equal(t, "Математика", name)

	_, ok = QuizTopicName("quiz_history")
	assert.False(t, ok)
}
