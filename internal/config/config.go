package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// FileConfig mirrors the on-disk TOML layout.
type FileConfig struct {
	API          APIConfig    `toml:"api"`
	Memory       MemoryConfig `toml:"memory"`
	SystemPrompt string       `toml:"system_prompt,omitempty"`
}

type APIConfig struct {
	Key               string  `toml:"key"`
	BaseURL           string  `toml:"base_url"`
	Model             string  `toml:"model"`
	ContextWindow     int     `toml:"context_window"`
	MaxResponseTokens int     `toml:"max_response_tokens"`
	Temperature       float64 `toml:"temperature"`
}

type MemoryConfig struct {
	PreservedTail    int `toml:"preserved_tail"`
	SummaryRetries   int `toml:"summary_retries"`
	SummaryCharLimit int `toml:"summary_char_limit"`
}

// Config is the resolved runtime configuration, assembled once at
// startup and injected into the components that need it.
type Config struct {
	APIKey            string
	BaseURL           string
	Model             string
	ContextWindow     int
	MaxResponseTokens int
	Temperature       float64
	SystemPrompt      string
	PreservedTail     int
	SummaryRetries    int
	SummaryCharLimit  int
}

// summaryHeadroom reserves room for the fixed summarization
// instruction that rides along on the secondary call.
const summaryHeadroom = 32

// TokenBudget derives the ceiling on one outbound request: the model
// context window minus the response reservation and summary headroom.
func (c *Config) TokenBudget() int {
	return c.ContextWindow - c.MaxResponseTokens - summaryHeadroom
}

func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		c.APIKey = key
	}
	if base := os.Getenv("CONVO_BASE_URL"); base != "" {
		c.BaseURL = base
	}
	if model := os.Getenv("CONVO_MODEL"); model != "" {
		c.Model = model
	}
	if window := os.Getenv("CONVO_CONTEXT_WINDOW"); window != "" {
		if n, err := strconv.Atoi(window); err == nil && n > 0 {
			c.ContextWindow = n
		}
	}
}

// Validate rejects configurations that cannot produce a usable token
// budget or lack a credential.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("no API key: set api.key in %s or export OPENAI_API_KEY", Path())
	}
	if c.TokenBudget() <= 0 {
		return fmt.Errorf("context_window %d leaves no budget after reserving %d response tokens",
			c.ContextWindow, c.MaxResponseTokens)
	}
	return nil
}

// Load resolves the runtime configuration: defaults, then the TOML
// file at Path() when present, then env overrides. A missing file is
// not an error; a malformed one is.
func Load() (*Config, error) {
	cfg := Default()

	path := Path()
	if FileExists(path) {
		var fc FileConfig
		if _, err := toml.DecodeFile(path, &fc); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		cfg.merge(&fc)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// merge copies the set fields of a decoded file over the defaults.
func (c *Config) merge(fc *FileConfig) {
	if fc.API.Key != "" {
		c.APIKey = fc.API.Key
	}
	if fc.API.BaseURL != "" {
		c.BaseURL = fc.API.BaseURL
	}
	if fc.API.Model != "" {
		c.Model = fc.API.Model
	}
	if fc.API.ContextWindow > 0 {
		c.ContextWindow = fc.API.ContextWindow
	}
	if fc.API.MaxResponseTokens > 0 {
		c.MaxResponseTokens = fc.API.MaxResponseTokens
	}
	if fc.API.Temperature > 0 {
		c.Temperature = fc.API.Temperature
	}
	if fc.SystemPrompt != "" {
		c.SystemPrompt = fc.SystemPrompt
	}
	if fc.Memory.PreservedTail > 0 {
		c.PreservedTail = fc.Memory.PreservedTail
	}
	if fc.Memory.SummaryRetries > 0 {
		c.SummaryRetries = fc.Memory.SummaryRetries
	}
	if fc.Memory.SummaryCharLimit > 0 {
		c.SummaryCharLimit = fc.Memory.SummaryCharLimit
	}
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
