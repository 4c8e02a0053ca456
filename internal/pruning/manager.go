package pruning

import (
	"context"
	"errors"
	"fmt"

	"convo/memory"
)

// ErrMessageTooLarge reports a single prompt whose estimated cost
// alone exceeds the token budget. The prompt is never truncated;
// callers decide what to do with it.
var ErrMessageTooLarge = errors.New("prompt alone exceeds token budget")

// Summarizer condenses a subsequence of prior messages into one short
// text via a secondary completion call.
type Summarizer interface {
	Summarize(ctx context.Context, msgs []memory.Message) (string, error)
}

// Defaults for the knobs of Options.
const (
	DefaultTailSize         = 2
	DefaultMaxRetries       = 3
	DefaultSummaryCharLimit = 2000
)

// Options configures a Manager. Zero fields other than Budget take
// the package defaults.
type Options struct {
	// Budget is the ceiling on the estimated token count of one
	// outbound request. Derived from the model context window minus
	// response headroom; see config.
	Budget int
	// TailSize is how many of the most recent messages are preserved
	// verbatim when pruning.
	TailSize int
	// MaxRetries bounds how many extra summarization rounds may run
	// when the first rewrite is still over budget.
	MaxRetries int
	// SummaryCharLimit is the hard ceiling the summary body is clamped
	// to when retries are exhausted. Lossy, last resort.
	SummaryCharLimit int
	// Counter overrides the token estimator.
	Counter TokenCounter
}

// Stats summarizes the result of preparing one turn.
type Stats struct {
	Estimated       int  // estimated tokens of the returned sequence
	Budget          int  // the budget used
	Pruned          int  // messages removed from the middle, total
	SummaryAttempts int  // secondary API calls made
	Degraded        bool // summarization failed; middle dropped outright
	BestEffort      bool // still over budget after retries; summary clamped
}

// Manager guarantees every outbound request fits the token budget
// while preserving as much recent context as possible. It owns the
// destructive rewrites of the history it wraps.
type Manager struct {
	hist             *memory.History
	summ             Summarizer
	counter          TokenCounter
	budget           int
	tailSize         int
	maxRetries       int
	summaryCharLimit int
}

// NewManager wraps hist with budget enforcement. summ provides the
// secondary summarization call.
func NewManager(hist *memory.History, summ Summarizer, opts Options) *Manager {
	if opts.TailSize <= 0 {
		opts.TailSize = DefaultTailSize
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = DefaultMaxRetries
	}
	if opts.SummaryCharLimit <= 0 {
		opts.SummaryCharLimit = DefaultSummaryCharLimit
	}
	if opts.Counter == nil {
		opts.Counter = HeuristicCounter{}
	}
	return &Manager{
		hist:             hist,
		summ:             summ,
		counter:          opts.Counter,
		budget:           opts.Budget,
		tailSize:         opts.TailSize,
		maxRetries:       opts.MaxRetries,
		summaryCharLimit: opts.SummaryCharLimit,
	}
}

// History returns the wrapped conversation log.
func (m *Manager) History() *memory.History { return m.hist }

// PrepareTurn appends prompt as a tentative user message and returns
// the sequence to transmit, pruning first when the estimate exceeds
// the budget.
// Rules:
// - A prompt whose lone cost exceeds the budget is rejected with
//   ErrMessageTooLarge before the history is touched.
// - Under budget, the history is returned with only the new message
//   appended.
// - Over budget, the middle of the history is collapsed into one
//   summary message placed directly after the system message; the
//   preserved tail shrinks across retries, down to the newest message.
// - A failed summarization call degrades to dropping the middle
//   outright (Stats.Degraded).
// - When retries run out the summary body is clamped to a character
//   ceiling and Stats.BestEffort is set.
func (m *Manager) PrepareTurn(ctx context.Context, prompt string) ([]memory.Message, Stats, error) {
	stats := Stats{Budget: m.budget}

	userMsg := memory.Message{Role: memory.RoleUser, Content: prompt}
	if err := userMsg.Valid(); err != nil {
		return nil, stats, err
	}
	if cost := m.counter.CountMessage(userMsg); cost > m.budget {
		return nil, stats, fmt.Errorf("%w: prompt is ~%d tokens against a budget of %d", ErrMessageTooLarge, cost, m.budget)
	}

	m.hist.Append(userMsg)

	est := m.counter.CountAll(m.hist.Messages())
	if est <= m.budget {
		stats.Estimated = est
		return m.hist.Messages(), stats, nil
	}

	tail := m.tailSize
	degraded := false
	for attempt := 0; attempt <= m.maxRetries; attempt++ {
		msgs := m.hist.Messages()
		_, middle, tailMsgs := partition(msgs, tail)
		if len(middle) == 0 {
			// Nothing left to condense; narrow the tail instead.
			if tail > 1 {
				tail--
				continue
			}
			break
		}

		rewritten := tailMsgs
		if !degraded {
			stats.SummaryAttempts++
			text, err := m.summ.Summarize(ctx, middle)
			if err != nil {
				// Lossy fallback: drop the middle outright and stop
				// calling the summarizer for this turn.
				degraded = true
				stats.Degraded = true
			} else {
				rewritten = append([]memory.Message{summaryMessage(text)}, tailMsgs...)
			}
		}
		stats.Pruned += len(middle)
		m.hist.Replace(rewritten)

		est = m.counter.CountAll(m.hist.Messages())
		if est <= m.budget {
			stats.Estimated = est
			return m.hist.Messages(), stats, nil
		}
		if tail > 1 {
			tail--
		}
	}

	// Last resort: clamp the summary body itself.
	m.clampSummary()
	stats.BestEffort = true
	stats.Estimated = m.counter.CountAll(m.hist.Messages())
	return m.hist.Messages(), stats, nil
}

// Rollback removes the tentative user message appended by PrepareTurn
// so a failed completion call leaves no trace of the turn.
func (m *Manager) Rollback() {
	if last, ok := m.hist.Last(); ok && last.Role == memory.RoleUser {
		m.hist.RemoveLast()
	}
}

const summaryPrefix = "Summary of the conversation so far: "

// summaryMessage wraps condensed text as a system message so later
// pruning passes treat it like instructions, not a recent turn.
func summaryMessage(text string) memory.Message {
	return memory.Message{Role: memory.RoleSystem, Content: summaryPrefix + text}
}

// clampSummary truncates the inserted summary (index 1, when present)
// to the configured character ceiling.
func (m *Manager) clampSummary() {
	msgs := m.hist.Messages()
	if len(msgs) < 2 || msgs[1].Role != memory.RoleSystem {
		return
	}
	runes := []rune(msgs[1].Content)
	if len(runes) <= m.summaryCharLimit {
		return
	}
	msgs[1] = memory.Message{Role: memory.RoleSystem, Content: string(runes[:m.summaryCharLimit])}
	m.hist.Replace(msgs[1:])
}
