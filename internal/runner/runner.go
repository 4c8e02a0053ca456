package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"convo/internal/provider"
	"convo/internal/pruning"
	"convo/internal/telemetry"
	"convo/memory"
)

// ErrEmptyPrompt rejects blank input at the boundary, before it can
// reach the memory manager.
var ErrEmptyPrompt = errors.New("empty prompt")

// Session processes one user turn at a time against a single
// conversation: validate, fit under budget, send, commit.
type Session struct {
	completer provider.Completer
	mgr       *pruning.Manager
}

func New(completer provider.Completer, mgr *pruning.Manager) *Session {
	return &Session{completer: completer, mgr: mgr}
}

// History returns the session's conversation log.
func (s *Session) History() *memory.History { return s.mgr.History() }

// RunTurn runs one full turn and returns the assistant reply.
// Rules:
// - Blank prompts fail with ErrEmptyPrompt before any mutation.
// - A failed completion call rolls the tentative user message back so
//   the history is exactly as it was before the turn.
// - The assistant reply is appended only on success.
func (s *Session) RunTurn(ctx context.Context, prompt string) (memory.Message, pruning.Stats, error) {
	if strings.TrimSpace(prompt) == "" {
		return memory.Message{}, pruning.Stats{}, ErrEmptyPrompt
	}

	turnID, ok := telemetry.TurnIDFromContext(ctx)
	if !ok {
		turnID = telemetry.NewTurnID()
		ctx = telemetry.WithTurnID(ctx, turnID)
	}
	telemetry.EmitPromptFeatures(ctx, prompt)

	seq, stats, err := s.mgr.PrepareTurn(ctx, prompt)
	if err != nil {
		return memory.Message{}, stats, err
	}

	telemetry.Emit("turn_prepared", map[string]any{
		"turn_id":          turnID,
		"budget":           stats.Budget,
		"total_estimated":  stats.Estimated,
		"pruned":           stats.Pruned,
		"summary_attempts": stats.SummaryAttempts,
		"degraded":         stats.Degraded,
		"best_effort":      stats.BestEffort,
	})

	reply, err := s.completer.Complete(ctx, seq)
	if err != nil {
		s.mgr.Rollback()
		return memory.Message{}, stats, fmt.Errorf("turn failed: %w", err)
	}

	s.mgr.History().Append(reply)

	telemetry.Emit("turn_completed", map[string]any{
		"turn_id":      turnID,
		"reply_length": len(reply.Content),
		"history_len":  s.mgr.History().Len(),
	})
	return reply, stats, nil
}
