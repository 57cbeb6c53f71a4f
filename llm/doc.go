// Package llm provides the request/response plumbing for the external AI
// agent: conversation messages, completion requests with functional options,
// tool declarations, the opaque credential type, and a concrete client for
// the Anthropic Messages API.
//
// The transport contract is deliberately narrow: one outbound request per
// completion call, no retries, no streaming. A call blocks until the full
// response (or failure) is available; cancellation and deadlines are the
// caller's concern via context.
package llm
