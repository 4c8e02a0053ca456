package config

// Default returns the built-in configuration, usable as-is once a
// credential is supplied.
func Default() *Config {
	return &Config{
		BaseURL:           "https://api.openai.com/v1",
		Model:             "gpt-4o-mini",
		ContextWindow:     4096,
		MaxResponseTokens: 800,
		Temperature:       1.0,
		SystemPrompt:      "You are a helpful assistant.",
		PreservedTail:     2,
		SummaryRetries:    3,
		SummaryCharLimit:  2000,
	}
}

// Template is the commented config file written by `convo init`.
const Template = `# convo configuration
# Location: ~/.config/convo/config.toml
# This file uses TOML format: https://toml.io

# Fallback system prompt when no personality is selected.
system_prompt = "You are a helpful assistant."

[api]
# API key; the OPENAI_API_KEY environment variable overrides this.
key = ""

# OpenAI-compatible endpoint.
base_url = "https://api.openai.com/v1"

# Model sent with every completion request.
model = "gpt-4o-mini"

# Model context window in tokens. The send budget is this minus
# max_response_tokens and a small fixed headroom.
context_window = 4096

# Tokens reserved for the model's reply.
max_response_tokens = 800

# Sampling temperature, 0 to 2.
temperature = 1.0

[memory]
# Recent messages always kept verbatim when pruning.
preserved_tail = 2

# Extra summarization rounds allowed when a rewrite is still over budget.
summary_retries = 3

# Hard character ceiling on the summary body after retries run out.
summary_char_limit = 2000
`
