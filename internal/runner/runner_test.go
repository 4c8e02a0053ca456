package runner_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"convo/internal/pruning"
	"convo/internal/runner"
	"convo/memory"
)

// mockCompleter records the sequence it was sent and replies with a
// canned message or error.
type mockCompleter struct {
	reply  memory.Message
	err    error
	gotSeq []memory.Message
	calls  int
}

func (m *mockCompleter) Complete(_ context.Context, msgs []memory.Message) (memory.Message, error) {
	m.calls++
	m.gotSeq = msgs
	if m.err != nil {
		return memory.Message{}, m.err
	}
	return m.reply, nil
}

type noSummarizer struct{}

func (noSummarizer) Summarize(context.Context, []memory.Message) (string, error) {
	return "", errors.New("summarizer must not be reached")
}

func newTestSession(completer *mockCompleter, budget int) (*runner.Session, *memory.History) {
	hist := memory.NewHistory("You are terse.")
	mgr := pruning.NewManager(hist, noSummarizer{}, pruning.Options{Budget: budget})
	return runner.New(completer, mgr), hist
}

func TestRunTurn_CommitsUserAndAssistant(t *testing.T) {
	completer := &mockCompleter{reply: memory.Message{Role: memory.RoleAssistant, Content: "hello there"}}
	s, hist := newTestSession(completer, 500)

	reply, stats, err := s.RunTurn(context.Background(), "hi")
	if err != nil {
		t.Fatalf("run turn: %v", err)
	}
	if reply.Content != "hello there" {
		t.Fatalf("reply: got %q", reply.Content)
	}
	if stats.Pruned != 0 || stats.Estimated > stats.Budget {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	msgs := hist.Messages()
	if len(msgs) != 3 {
		t.Fatalf("history length: got %d want 3", len(msgs))
	}
	if msgs[1].Role != memory.RoleUser || msgs[1].Content != "hi" {
		t.Fatalf("user turn not committed: %+v", msgs[1])
	}
	if msgs[2].Role != memory.RoleAssistant || msgs[2].Content != "hello there" {
		t.Fatalf("assistant turn not committed: %+v", msgs[2])
	}

	// The transmitted sequence is the history up to and including the
	// new user message.
	if !reflect.DeepEqual(completer.gotSeq, msgs[:2]) {
		t.Fatalf("transmitted sequence mismatch:\n got %+v\nwant %+v", completer.gotSeq, msgs[:2])
	}
}

func TestRunTurn_EmptyPromptRejectedAtBoundary(t *testing.T) {
	completer := &mockCompleter{}
	s, hist := newTestSession(completer, 500)

	for _, prompt := range []string{"", "   ", "\t\n"} {
		_, _, err := s.RunTurn(context.Background(), prompt)
		if !errors.Is(err, runner.ErrEmptyPrompt) {
			t.Fatalf("prompt %q: got %v want ErrEmptyPrompt", prompt, err)
		}
	}
	if completer.calls != 0 {
		t.Fatalf("completer called %d times for invalid prompts", completer.calls)
	}
	if hist.Len() != 1 {
		t.Fatalf("history mutated: len=%d", hist.Len())
	}
}

func TestRunTurn_CompletionFailure_RollsBack(t *testing.T) {
	completer := &mockCompleter{err: errors.New("401 unauthorized")}
	s, hist := newTestSession(completer, 500)
	before := hist.Messages()

	_, _, err := s.RunTurn(context.Background(), "hi")
	if err == nil || !strings.Contains(err.Error(), "401 unauthorized") {
		t.Fatalf("expected wrapped transport error, got %v", err)
	}
	if !reflect.DeepEqual(hist.Messages(), before) {
		t.Fatalf("history not rolled back: %+v", hist.Messages())
	}
}

func TestRunTurn_MessageTooLarge_Surfaced(t *testing.T) {
	completer := &mockCompleter{}
	s, hist := newTestSession(completer, 50)

	huge := strings.TrimSpace(strings.Repeat("w ", 500))
	_, _, err := s.RunTurn(context.Background(), huge)
	if !errors.Is(err, pruning.ErrMessageTooLarge) {
		t.Fatalf("got %v want ErrMessageTooLarge", err)
	}
	if completer.calls != 0 {
		t.Fatalf("completer called for oversized prompt")
	}
	if hist.Len() != 1 {
		t.Fatalf("history mutated: len=%d", hist.Len())
	}
}
