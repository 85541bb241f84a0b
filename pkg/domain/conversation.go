package domain

import "strings"

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Turn struct {
	Role    Role
	Content string
}

// Conversation is the ordered turn sequence sent to the model. The system
// turn is created once and never modified afterwards; user and assistant
// turns are only appended, never reordered or removed.
type Conversation struct {
	Turns []Turn
}

func NewConversation(systemPrompt string) *Conversation {
	return &Conversation{
		Turns: []Turn{{Role: RoleSystem, Content: systemPrompt}},
	}
}

// Append adds one turn. Empty or whitespace-only text is rejected and the
// turn sequence is left untouched.
func (c *Conversation) Append(role Role, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyMessage
	}
	c.Turns = append(c.Turns, Turn{Role: role, Content: text})
	return nil
}
