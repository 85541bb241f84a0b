package domain

import (
	"fmt"
	"strings"
)

// Recommendation is the parsed result of one media recommendation reply.
type Recommendation struct {
	Title       string
	Description string
}

// Option is a selectable menu entry: the key travels in callback payloads and
// model requests, the label is what the user sees.
type Option struct {
	Key   string
	Label string
}

var MediaCategories = []Option{
	{Key: "movies", Label: "Фильмы"},
	{Key: "books", Label: "Книги"},
	{Key: "music", Label: "Музыка"},
}

var MediaGenres = map[string][]Option{
	"movies": {
		{Key: "drama", Label: "Драма"},
		{Key: "comedy", Label: "Комедия"},
		{Key: "action", Label: "Боевик"},
		{Key: "sci-fi", Label: "Фантастика"},
		{Key: "horror", Label: "Ужасы"},
		{Key: "thriller", Label: "Триллер"},
	},
	"books": {
		{Key: "novel", Label: "Роман"},
		{Key: "detective", Label: "Детектив"},
		{Key: "fantasy", Label: "Фэнтези"},
		{Key: "adventure", Label: "Приключения"},
		{Key: "historical", Label: "Исторический"},
		{Key: "science", Label: "Научная литература"},
	},
	"music": {
		{Key: "rock", Label: "Рок"},
		{Key: "pop", Label: "Поп"},
		{Key: "classical", Label: "Классика"},
		{Key: "jazz", Label: "Джаз"},
		{Key: "electronic", Label: "Электроника"},
		{Key: "folk", Label: "Фолк"},
	},
}

// MediaQuery builds the user turn for a recommendation request. Previously
// disliked titles are embedded as a comma-joined exclusion list.
func MediaQuery(category, genre string, disliked []string) string {
	q := fmt.Sprintf("Категория: %s\nЖанр: %s", category, genre)
	if len(disliked) > 0 {
		q += "\nНе предлагай: " + strings.Join(disliked, ", ")
	}
	return q
}
