package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gptbot/pkg/domain"
)

func TestSessionRepository(t *testing.T) {
	repo := NewSessionRepository()

	_, ok := repo.Get(1)
	assert.False(t, ok)

	repo.Save(1, &domain.TranslatorSession{Phase: domain.StageTranslatorSelectingDirection})

	session, ok := repo.Get(1)
	require.True(t, ok)
	assert.Equal(t, domain.StageTranslatorSelectingDirection, session.Stage())

	_, ok = repo.Get(2)
	assert.False(t, ok)
}

func TestSessionRepositorySaveReplaces(t *testing.T) {
	repo := NewSessionRepository()

	repo.Save(1, &domain.ChatSession{})
	repo.Save(1, &domain.QuizSession{Phase: domain.StageQuizSelectingTopic})

	session, ok := repo.Get(1)
	require.True(t, ok)
	assert.Equal(t, domain.StageQuizSelectingTopic, session.Stage())
}

func TestSessionRepositoryClear(t *testing.T) {
	repo := NewSessionRepository()
	repo.Save(1, &domain.ChatSession{})

	repo.Clear(1)

	_, ok := repo.Get(1)
	assert.False(t, ok)

	// clearing an absent chat is a no-op
	repo.Clear(1)
	repo.Clear(42)
}
