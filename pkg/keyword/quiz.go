package keyword

import "strings"

const (
	correctMarker   = "правильно!"
	incorrectMarker = "неправильно!"
)

// IsCorrectAnswer reports whether a quiz grading reply marks the answer as
// correct. "Неправильно!" contains "правильно!", so the negative marker must
// be absent as well.
func IsCorrectAnswer(reply string) bool {
	reply = strings.ToLower(reply)
	return strings.Contains(reply, correctMarker) && !strings.Contains(reply, incorrectMarker)
}
