package provider

import (
	"testing"

	"convo/memory"
)

func TestToOpenAIMessages_RolesPreserved(t *testing.T) {
	msgs := []memory.Message{
		{Role: memory.RoleSystem, Content: "be terse"},
		{Role: memory.RoleUser, Content: "hi"},
		{Role: memory.RoleAssistant, Content: "hello"},
	}

	out := toOpenAIMessages(msgs)
	if len(out) != 3 {
		t.Fatalf("length: got %d want 3", len(out))
	}
	if out[0].OfSystem == nil {
		t.Fatalf("expected system message at 0: %+v", out[0])
	}
	if out[1].OfUser == nil {
		t.Fatalf("expected user message at 1: %+v", out[1])
	}
	if out[2].OfAssistant == nil {
		t.Fatalf("expected assistant message at 2: %+v", out[2])
	}
}

func TestNewClient_RequiresKey(t *testing.T) {
	if _, err := NewClient(Settings{}); err == nil {
		t.Fatalf("expected error for missing API key")
	}

	c, err := NewClient(Settings{APIKey: "sk-test"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if c.model != DefaultModel {
		t.Fatalf("model default: got %q want %q", c.model, DefaultModel)
	}
}
