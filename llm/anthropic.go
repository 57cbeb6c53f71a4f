package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"
)

// ErrMissingCredential is returned when a completion is attempted without
// an API key. It is checked before any network I/O happens.
var ErrMissingCredential = errors.New("llm: missing credential")

const (
	defaultBaseURL   = "https://api.anthropic.com"
	messagesPath     = "/v1/messages"
	anthropicVersion = "2023-06-01"
)

// Client submits a completion request to the agent service and returns the
// full response. Implementations make exactly one outbound request per call
// and never retry; failures propagate to the caller.
type Client interface {
	Complete(ctx context.Context, cred Credential, req *CompletionRequest) (*CompletionResponse, error)
}

// AnthropicClient is the Client implementation backed by the Anthropic
// Messages API.
type AnthropicClient struct {
	baseURL    string
	httpClient *http.Client
}

// AnthropicOption configures an AnthropicClient.
type AnthropicOption func(*AnthropicClient)

// WithBaseURL overrides the service endpoint, typically for test servers.
func WithBaseURL(url string) AnthropicOption {
	return func(c *AnthropicClient) {
		c.baseURL = url
	}
}

// WithHTTPClient supplies the *http.Client for requests. Deadlines and
// transport timeouts belong to this client; the AnthropicClient imposes
// none of its own.
func WithHTTPClient(hc *http.Client) AnthropicOption {
	return func(c *AnthropicClient) {
		c.httpClient = hc
	}
}

// NewAnthropicClient creates a client for the Anthropic Messages API.
func NewAnthropicClient(opts ...AnthropicOption) *AnthropicClient {
	c := &AnthropicClient{
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// messagesResponse mirrors the wire shape of a Messages API response.
type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// Complete submits the request and blocks until the full response or a
// failure is available. The credential travels only in the request header
// and is never echoed into errors or logs.
func (c *AnthropicClient) Complete(ctx context.Context, cred Credential, req *CompletionRequest) (*CompletionResponse, error) {
	if cred.IsZero() {
		return nil, ErrMissingCredential
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+messagesPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Api-Key", cred.APIKey)
	httpReq.Header.Set("Anthropic-Version", anthropicVersion)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		if msg := gjson.GetBytes(respBody, "error.message").String(); msg != "" {
			return nil, fmt.Errorf("service error (status %d): %s", httpResp.StatusCode, msg)
		}
		return nil, fmt.Errorf("service error (status %d)", httpResp.StatusCode)
	}

	var wire messagesResponse
	if err := json.Unmarshal(respBody, &wire); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	resp := &CompletionResponse{
		StopReason: wire.StopReason,
		Usage: TokenUsage{
			InputTokens:  wire.Usage.InputTokens,
			OutputTokens: wire.Usage.OutputTokens,
		},
	}
	// Tool-use and thinking blocks are interleaved with text; only the
	// text segments make up the agent's answer.
	for _, block := range wire.Content {
		if block.Type == "text" {
			resp.Content += block.Text
		}
	}
	return resp, nil
}
