package llm

// CompletionRequest represents a request for an agent completion.
type CompletionRequest struct {
	// Model identifies the model serving the request.
	Model string `json:"model"`

	// MaxTokens caps the size of the generated response.
	MaxTokens int `json:"max_tokens"`

	// Messages contains the conversation history.
	Messages []Message `json:"messages"`

	// Tools contains tool capabilities declared for the request.
	Tools []ToolDef `json:"tools,omitempty"`
}

// CompletionResponse represents the complete response to a request.
type CompletionResponse struct {
	// Content is the generated text: the concatenation of all text
	// segments of the response, in the order they were received.
	Content string

	// StopReason indicates why the generation stopped.
	// Common values: "end_turn", "max_tokens", "tool_use"
	StopReason string

	// Usage contains token usage statistics.
	Usage TokenUsage
}

// TokenUsage tracks token consumption for a request.
type TokenUsage struct {
	// InputTokens is the number of tokens in the prompt.
	InputTokens int

	// OutputTokens is the number of tokens generated in the response.
	OutputTokens int
}

// Total returns the combined input and output token count.
func (u TokenUsage) Total() int {
	return u.InputTokens + u.OutputTokens
}

// CompletionOption is a functional option for configuring CompletionRequest.
type CompletionOption func(*CompletionRequest)

// WithMaxTokens sets the response-size ceiling for the request.
func WithMaxTokens(n int) CompletionOption {
	return func(r *CompletionRequest) {
		r.MaxTokens = n
	}
}

// WithTools declares the tool capabilities available for the request.
func WithTools(tools ...ToolDef) CompletionOption {
	return func(r *CompletionRequest) {
		r.Tools = tools
	}
}

// ApplyOptions applies a set of options to the completion request.
func (r *CompletionRequest) ApplyOptions(opts ...CompletionOption) {
	for _, opt := range opts {
		opt(r)
	}
}

// NewCompletionRequest creates a new CompletionRequest for the given model
// and messages, with any options applied.
func NewCompletionRequest(model string, messages []Message, opts ...CompletionOption) *CompletionRequest {
	req := &CompletionRequest{
		Model:    model,
		Messages: messages,
	}
	req.ApplyOptions(opts...)
	return req
}

// HasContent returns true if the response contains text content.
func (r *CompletionResponse) HasContent() bool {
	return r.Content != ""
}

// IsComplete returns true if generation finished normally (not truncated).
func (r *CompletionResponse) IsComplete() bool {
	return r.StopReason == "end_turn" || r.StopReason == "tool_use"
}
