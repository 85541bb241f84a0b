package resource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gptbot/pkg/domain"
)

func writeFile(t *testing.T, root, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, dir, name), []byte(content), 0o644))
}

func TestLoaderImage(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "images", "main.jpg", "jpeg bytes")
	l := NewLoader(root)

	data, ok := l.Image("main")
	require.True(t, ok)
	assert.Equal(t, []byte("jpeg bytes"), data)

	_, ok = l.Image("missing")
	assert.False(t, ok)
}

func TestLoaderText(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "messages", "main.txt", "Привет!")
	l := NewLoader(root)

	text, ok := l.Text("main")
	require.True(t, ok)
	assert.Equal(t, "Привет!", text)

	_, ok = l.Text("missing")
	assert.False(t, ok)
}

func TestLoaderPrompt(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "prompts", "gpt.txt", "Ты - ассистент.\n")
	writeFile(t, root, "prompts", "empty.txt", "  \n ")
	l := NewLoader(root)

	prompt, err := l.Prompt("gpt")
	require.NoError(t, err)
	assert.Equal(t, "Ты - ассистент.", prompt)

	_, err = l.Prompt("missing")
	assert.ErrorIs(t, err, domain.ErrResource)

	_, err = l.Prompt("empty")
	assert.ErrorIs(t, err, domain.ErrResource)
}

func TestLoaderConversation(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "prompts", "quiz.txt", "Ты - ведущий викторины.")
	l := NewLoader(root)

	conv, err := l.Conversation("quiz")
	require.NoError(t, err)
	require.Len(t, conv.Turns, 1)
	assert.Equal(t, domain.RoleSystem, conv.Turns[0].Role)
	assert.Equal(t, "Ты - ведущий викторины.", conv.Turns[0].Content)
}

func TestCelebrities(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "prompts", "talk_mercury.txt", "Ты - Фредди Меркьюри, вокалист группы Queen.")
	writeFile(t, root, "prompts", "talk_einstein.txt", "Ты - Альберт Эйнштейн, физик-теоретик.\nВторая строка.")
	writeFile(t, root, "prompts", "gpt.txt", "Ты - ассистент.")
	l := NewLoader(root)

	celebrities, err := l.Celebrities()
	require.NoError(t, err)

	// sorted by key, non-celebrity prompts skipped
	require.Len(t, celebrities, 2)
	assert.Equal(t, Celebrity{Key: "talk_einstein", Name: "Альберт Эйнштейн"}, celebrities[0])
	assert.Equal(t, Celebrity{Key: "talk_mercury", Name: "Фредди Меркьюри"}, celebrities[1])
}

func TestCelebrity(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "prompts", "talk_curie.txt", "Ты - Мария Кюри, физик и химик.")
	writeFile(t, root, "prompts", "gpt.txt", "Ты - ассистент.")
	l := NewLoader(root)

	celebrity, ok := l.Celebrity("talk_curie")
	require.True(t, ok)
	assert.Equal(t, "Мария Кюри", celebrity.Name)

	_, ok = l.Celebrity("talk_missing")
	assert.False(t, ok)

	// keys without the talk_ prefix never resolve
	_, ok = l.Celebrity("gpt")
	assert.False(t, ok)
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"name before comma", "Ты - Альберт Эйнштейн, физик-теоретик.", "Альберт Эйнштейн"},
		{"no comma takes rest of line", "Ты - Фредди Меркьюри", "Фредди Меркьюри"},
		{"surrounding spaces trimmed", "Ты -  Мария Кюри , химик", "Мария Кюри"},
		{"too short", "Ты -", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractName(tt.line))
		})
	}
}
