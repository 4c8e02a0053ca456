package memory

import "fmt"

// Role identifies the speaker of a message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one role-tagged entry in a conversation.
// Values are immutable once created; mutation happens by replacing
// entries in a History, never by editing a Message in place.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Valid reports whether the message is well-formed: a known role and
// non-empty content.
func (m Message) Valid() error {
	switch m.Role {
	case RoleSystem, RoleUser, RoleAssistant:
	default:
		return fmt.Errorf("unknown role %q", m.Role)
	}
	if m.Content == "" {
		return fmt.Errorf("empty content for role %q", m.Role)
	}
	return nil
}
