package pruning_test

import (
	"context"
	"strings"

	"convo/memory"
)

// msgOfWords builds a message whose content is exactly n words, so
// the heuristic counter bills it n plus the per-message overhead.
func msgOfWords(role memory.Role, n int) memory.Message {
	return memory.Message{Role: role, Content: wordsN(n)}
}

func wordsN(n int) string {
	return strings.TrimSpace(strings.Repeat("w ", n))
}

// seededHistory returns a history with sysWords of system prompt and
// count alternating user/assistant exchange messages of msgWords each.
func seededHistory(sysWords, count, msgWords int) *memory.History {
	h := memory.NewHistory(wordsN(sysWords))
	for i := 0; i < count; i++ {
		role := memory.RoleUser
		if i%2 == 1 {
			role = memory.RoleAssistant
		}
		h.Append(msgOfWords(role, msgWords))
	}
	return h
}

// scriptedSummarizer replays canned replies (repeating the last one)
// or fails every call with err.
type scriptedSummarizer struct {
	replies []string
	err     error
	calls   int
}

func (s *scriptedSummarizer) Summarize(_ context.Context, _ []memory.Message) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	i := s.calls - 1
	if i >= len(s.replies) {
		i = len(s.replies) - 1
	}
	return s.replies[i], nil
}
