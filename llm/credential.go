package llm

// Credential carries the API secret used to authenticate against the agent
// service. It is supplied by the caller per invocation and never persisted.
type Credential struct {
	// APIKey is the secret value sent in the request headers.
	APIKey string
}

// IsZero returns true if no secret is present.
func (c Credential) IsZero() bool {
	return c.APIKey == ""
}

// String implements fmt.Stringer and always redacts the secret, so a
// credential that ends up in a log record or error message leaks nothing.
func (c Credential) String() string {
	return "[redacted]"
}
