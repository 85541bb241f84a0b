package keyword

import (
	"strings"

	"gptbot/pkg/domain"
)

const (
	titlePrefix       = "Название:"
	descriptionPrefix = "Описание:"
)

// ParseRecommendation scans a recommendation reply for its title and
// description lines. Missing fields stay empty, the last occurrence of a
// prefix wins.
func ParseRecommendation(reply string) domain.Recommendation {
	var rec domain.Recommendation
	for _, line := range strings.Split(strings.TrimSpace(reply), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, titlePrefix):
			rec.Title = strings.TrimSpace(strings.TrimPrefix(line, titlePrefix))
		case strings.HasPrefix(line, descriptionPrefix):
			rec.Description = strings.TrimSpace(strings.TrimPrefix(line, descriptionPrefix))
		}
	}
	return rec
}
