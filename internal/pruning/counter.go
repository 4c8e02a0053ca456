package pruning

import (
	"strings"

	"convo/memory"
)

// TokenCounter estimates token cost for messages or a whole sequence.
type TokenCounter interface {
	CountMessage(m memory.Message) int
	CountAll(msgs []memory.Message) int
}

// HeuristicCounter is the default deterministic estimator.
// Rules:
// - content: whitespace-separated word count (one token per word).
// - plus a small fixed per-message overhead for role tagging and
//   request framing.
// Exactness is not required; the budget carries headroom for the
// heuristic's error.
type HeuristicCounter struct{}

// Fixed per-message overhead for deterministic counts; changing this requires updating the guard test.
const messageOverhead = 4

func (HeuristicCounter) CountMessage(m memory.Message) int {
	return len(strings.Fields(m.Content)) + messageOverhead
}

func (c HeuristicCounter) CountAll(msgs []memory.Message) int {
	total := 0
	for _, m := range msgs {
		total += c.CountMessage(m)
	}
	return total
}
