package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"convo/memory"
)

// Completer is the single capability the rest of the program needs
// from the completion API: an ordered sequence of role-tagged
// messages in, one assistant message or an error out.
type Completer interface {
	Complete(ctx context.Context, msgs []memory.Message) (memory.Message, error)
}

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4o-mini"
)

// Settings configures a Client. Zero BaseURL and Model take the
// package defaults; the API key is required.
type Settings struct {
	BaseURL           string
	APIKey            string
	Model             string
	Temperature       float64
	MaxResponseTokens int
}

// Client talks to an OpenAI-compatible chat-completions endpoint.
// One call attempt per request; retry policy belongs to the caller.
type Client struct {
	client            openai.Client
	model             string
	temperature       float64
	maxResponseTokens int
}

// NewClient creates a completion client. Returns an error if the API
// key is missing.
func NewClient(s Settings) (*Client, error) {
	if s.BaseURL == "" {
		s.BaseURL = DefaultBaseURL
	}
	if s.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if s.Model == "" {
		s.Model = DefaultModel
	}

	client := openai.NewClient(
		option.WithBaseURL(s.BaseURL),
		option.WithAPIKey(s.APIKey),
	)

	return &Client{
		client:            client,
		model:             s.Model,
		temperature:       s.Temperature,
		maxResponseTokens: s.MaxResponseTokens,
	}, nil
}

// Complete implements Completer with a single non-streaming request.
func (c *Client) Complete(ctx context.Context, msgs []memory.Message) (memory.Message, error) {
	params := openai.ChatCompletionNewParams{
		Messages: toOpenAIMessages(msgs),
		Model:    openai.ChatModel(c.model),
	}
	if c.temperature > 0 {
		params.Temperature = openai.Float(c.temperature)
	}
	if c.maxResponseTokens > 0 {
		params.MaxTokens = openai.Int(int64(c.maxResponseTokens))
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return memory.Message{}, fmt.Errorf("completion request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return memory.Message{}, fmt.Errorf("completion response has no choices")
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return memory.Message{}, fmt.Errorf("completion response is empty")
	}
	return memory.Message{Role: memory.RoleAssistant, Content: content}, nil
}

// summaryInstruction is the fixed prompt appended to the prunable
// middle for the secondary summarization call.
const summaryInstruction = "Summarize this conversation so far. Preserve facts, decisions, and open questions; omit pleasantries."

// Summarize implements pruning.Summarizer by sending the given
// messages plus the summary instruction as an independent request.
func (c *Client) Summarize(ctx context.Context, msgs []memory.Message) (string, error) {
	req := make([]memory.Message, 0, len(msgs)+1)
	req = append(req, msgs...)
	req = append(req, memory.Message{Role: memory.RoleUser, Content: summaryInstruction})

	reply, err := c.Complete(ctx, req)
	if err != nil {
		return "", fmt.Errorf("summarization request: %w", err)
	}
	return reply.Content, nil
}
