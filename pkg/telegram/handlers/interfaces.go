package handlers

import (
	"context"

	"gptbot/pkg/domain"
	"gptbot/pkg/resource"
)

type SessionStore interface {
	Save(chatID int64, session domain.Session)
	Get(chatID int64) (domain.Session, bool)
	Clear(chatID int64)
}

type ResourceLoader interface {
	Image(name string) ([]byte, bool)
	Text(name string) (string, bool)
	Conversation(name string) (*domain.Conversation, error)
	Celebrities() ([]resource.Celebrity, error)
	Celebrity(key string) (resource.Celebrity, bool)
}

type Completer interface {
	Complete(ctx context.Context, conv *domain.Conversation) (string, error)
}
