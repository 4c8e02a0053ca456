// Package persona holds the selectable chatbot personalities. A
// personality is just a named system prompt; selecting one seeds a
// fresh conversation.
package persona

import "fmt"

// Personality names a system prompt that flavors the assistant's
// responses.
type Personality struct {
	Name         string
	Description  string
	SystemPrompt string
}

// Manager keeps the list of available personalities, seeded with the
// built-in defaults.
type Manager struct {
	list []Personality
}

// NewManager returns a manager holding the default personalities.
func NewManager() *Manager {
	return &Manager{list: defaults()}
}

func defaults() []Personality {
	return []Personality{
		{
			Name:         "Helpful",
			Description:  "A helpful assistant",
			SystemPrompt: "You are a helpful assistant.",
		},
		{
			Name:         "Comedian",
			Description:  "A stand-up comedian buddy",
			SystemPrompt: "You are a professional stand-up comedian, but having a conversation with a friend. You commonly use bits of novel comedy routines conversationally.",
		},
		{
			Name:         "Computer Expert",
			Description:  "An expert in computers and troubleshooting",
			SystemPrompt: "You are a computer expert, skilled in troubleshooting and problem-solving in the IT domain.",
		},
		{
			Name:         "Snarky",
			Description:  "A sarcastic AI",
			SystemPrompt: "You are a sarcastic assistant, responding with witty and sardonic remarks.",
		},
		{
			Name:         "Counselor",
			Description:  "An emotional well-being counselor",
			SystemPrompt: "You are a counselor, offering guidance and support to those seeking emotional wellness and personal growth. You are an advocate, and gently shine light where needed for growth.",
		},
	}
}

// Default returns the personality used when none has been selected.
func (m *Manager) Default() Personality {
	return m.list[0]
}

// List returns a copy of the available personalities in order.
func (m *Manager) List() []Personality {
	out := make([]Personality, len(m.list))
	copy(out, m.list)
	return out
}

// Add appends a custom personality.
func (m *Manager) Add(p Personality) {
	m.list = append(m.list, p)
}

// Get looks a personality up by name.
func (m *Manager) Get(name string) (Personality, error) {
	for _, p := range m.list {
		if p.Name == name {
			return p, nil
		}
	}
	return Personality{}, fmt.Errorf("unknown personality %q", name)
}

// At returns the personality at the given list position.
func (m *Manager) At(i int) (Personality, error) {
	if i < 0 || i >= len(m.list) {
		return Personality{}, fmt.Errorf("personality index %d out of range", i)
	}
	return m.list[i], nil
}

// Len returns the number of available personalities.
func (m *Manager) Len() int { return len(m.list) }
