package resource

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gptbot/pkg/domain"
)

// Loader reads bot resources from a directory tree:
//
//	<root>/images/<name>.jpg
//	<root>/messages/<name>.txt
//	<root>/prompts/<name>.txt
type Loader struct {
	root string
}

func NewLoader(root string) *Loader {
	return &Loader{root: root}
}

// Image returns the raw bytes of a named image. A missing image is not an
// error, the caller falls back to a plain text message.
func (l *Loader) Image(name string) ([]byte, bool) {
	data, err := os.ReadFile(filepath.Join(l.root, "images", name+".jpg"))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Text returns a named user-facing message.
func (l *Loader) Text(name string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(l.root, "messages", name+".txt"))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Prompt returns a named system prompt. Unlike images and messages, a missing
// or empty prompt is an error: a flow cannot start without its instructions.
func (l *Loader) Prompt(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(l.root, "prompts", name+".txt"))
	if err != nil {
		return "", fmt.Errorf("%w: reading prompt %q: %v", domain.ErrResource, name, err)
	}

	prompt := strings.TrimSpace(string(data))
	if prompt == "" {
		return "", fmt.Errorf("%w: prompt %q is empty", domain.ErrResource, name)
	}
	return prompt, nil
}

// Conversation starts a new conversation seeded with the named system prompt.
func (l *Loader) Conversation(name string) (*domain.Conversation, error) {
	prompt, err := l.Prompt(name)
	if err != nil {
		return nil, err
	}
	return domain.NewConversation(prompt), nil
}
