package matchers

import (
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"gptbot/pkg/domain"
)

type SessionProvider interface {
	Get(chatID int64) (domain.Session, bool)
}

// reservedTriggers are literal texts with their own handlers. Stage matchers
// must refuse them, handler matching order is not guaranteed.
var reservedTriggers = map[string]bool{
	domain.TriggerFinish:      true,
	domain.TriggerAnotherFact: true,
	domain.TriggerSayGoodbye:  true,
}

// StageText matches a plain text message when the chat's session is at one of
// the given stages. Commands and reserved trigger texts never match.
func StageText(provider SessionProvider, stages ...domain.Stage) bot.MatchFunc {
	return func(update *models.Update) bool {
		if update.Message == nil || update.Message.Text == "" {
			return false
		}
		if strings.HasPrefix(update.Message.Text, "/") {
			return false
		}
		if reservedTriggers[update.Message.Text] {
			return false
		}

		session, ok := provider.Get(update.Message.Chat.ID)
		if !ok {
			return false
		}

		for _, stage := range stages {
			if session.Stage() == stage {
				return true
			}
		}
		return false
	}
}
