package memory

import "encoding/json"

// History is the ordered log of a single conversation. Index 0 is
// always the system message that seeded the session; every mutator
// preserves it.
//
// History is not safe for concurrent use; a session has exactly one
// caller (see cmd/convo).
type History struct {
	msgs []Message
}

// NewHistory creates a history seeded with the system message built
// from systemPrompt.
func NewHistory(systemPrompt string) *History {
	return &History{msgs: []Message{{Role: RoleSystem, Content: systemPrompt}}}
}

// Append adds a message to the end of the history.
func (h *History) Append(m Message) {
	h.msgs = append(h.msgs, m)
}

// Messages returns a copy of the history in conversation order,
// usable verbatim as an outbound request payload.
func (h *History) Messages() []Message {
	out := make([]Message, len(h.msgs))
	copy(out, h.msgs)
	return out
}

// Len returns the number of messages, system message included.
func (h *History) Len() int { return len(h.msgs) }

// System returns the seed system message.
func (h *History) System() Message { return h.msgs[0] }

// Last returns the most recent message and true, or the zero Message
// and false when only the system message is present.
func (h *History) Last() (Message, bool) {
	if len(h.msgs) < 2 {
		return Message{}, false
	}
	return h.msgs[len(h.msgs)-1], true
}

// RemoveLast drops the most recent message. The system message is
// never removed.
func (h *History) RemoveLast() {
	if len(h.msgs) > 1 {
		h.msgs = h.msgs[:len(h.msgs)-1]
	}
}

// Replace swaps the entire tail after the system message for msgs.
// Used by pruning to rewrite the middle of the conversation; the
// system message at index 0 stays untouched.
func (h *History) Replace(msgs []Message) {
	next := make([]Message, 0, len(msgs)+1)
	next = append(next, h.msgs[0])
	next = append(next, msgs...)
	h.msgs = next
}

// Reset drops everything after the system message.
func (h *History) Reset() {
	h.msgs = h.msgs[:1]
}

// TranscriptJSON renders the history as a JSON array of role/content
// objects, matching the outbound wire shape.
func (h *History) TranscriptJSON() (string, error) {
	b, err := json.Marshal(h.msgs)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
