package screening

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/adversight/screening/llm"
)

// Config holds the embedder-facing transport settings. The core itself
// enforces no timeout and fixes the model and token ceiling; what a
// deployment can tune is where requests go and how long the transport
// waits for them.
type Config struct {
	// BaseURL overrides the agent service endpoint. Empty means the
	// production endpoint.
	BaseURL string `yaml:"base_url,omitempty"`

	// RequestTimeout is the transport-level cap on one agent call.
	// Format: Go duration string (e.g., "90s", "2m"). Empty means no
	// timeout.
	RequestTimeout string `yaml:"request_timeout,omitempty"`
}

// GetRequestTimeout parses the request timeout and returns a duration.
// Returns zero (no timeout) if not set or invalid.
func (c *Config) GetRequestTimeout() time.Duration {
	if c == nil || c.RequestTimeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil {
		return 0
	}
	return d
}

// LoadConfig reads and parses a YAML config file from the given path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

// NewFromConfig creates a Screener whose agent client is built from the
// config. Options are applied afterwards and may still override the client.
func NewFromConfig(cfg *Config, opts ...Option) *Screener {
	var clientOpts []llm.AnthropicOption
	if cfg != nil && cfg.BaseURL != "" {
		clientOpts = append(clientOpts, llm.WithBaseURL(cfg.BaseURL))
	}
	clientOpts = append(clientOpts, llm.WithHTTPClient(&http.Client{
		Timeout: cfg.GetRequestTimeout(),
	}))

	all := append([]Option{WithClient(llm.NewAnthropicClient(clientOpts...))}, opts...)
	return New(all...)
}
