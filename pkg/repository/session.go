package repository

import (
	"sync"

	"gptbot/pkg/domain"
)

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[int64]domain.Session
}

func NewSessionRepository() *sessionRepository {
	return &sessionRepository{
		sessions: make(map[int64]domain.Session),
	}
}

func (s *sessionRepository) Save(chatID int64, session domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[chatID] = session
}

func (s *sessionRepository) Get(chatID int64) (domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, exists := s.sessions[chatID]
	return session, exists
}

func (s *sessionRepository) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, chatID)
}
