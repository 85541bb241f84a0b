package domain

// QuizTopics are the topics the quiz flow offers. The key doubles as the
// model-facing topic identifier.
var QuizTopics = []Option{
	{Key: "quiz_prog", Label: "Язык Python"},
	{Key: "quiz_math", Label: "Математика"},
	{Key: "quiz_biology", Label: "Биология"},
}

// QuizTopicName resolves a topic key to its display label.
func QuizTopicName(key string) (string, bool) {
	for _, t := range QuizTopics {
		if t.Key == key {
			return t.Label, true
		}
	}
	return "", false
}

// QuizMore is the synthetic user turn that asks for the next question on the
// current topic.
const QuizMore = "quiz_more"
