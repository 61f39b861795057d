package providers

import "context"

// Provider is the core interface that all chat-completion adapters implement.
// It provides a unified abstraction over the different backends (Groq,
// Ollama, OpenAI) that the fallback orchestrator tries in priority order.
//
// All methods accept a context.Context for cancellation and timeout control.
//
// Example usage:
//
//	msgs := []providers.Message{
//	    {Role: providers.RoleSystem, Content: "You are Crimson."},
//	    {Role: providers.RoleUser, Content: "Hello!"},
//	}
//
//	if p.Available(ctx) {
//	    reply, err := p.Send(ctx, msgs)
//	    ...
//	}
type Provider interface {
	// Send translates the messages into the provider's wire format, performs
	// exactly one synchronous completion call, and returns the trimmed reply
	// text. An empty reply is a valid success. Every failure (non-2xx
	// status, network error, timeout, malformed response body) is returned
	// as one of this package's classified error types; no raw transport
	// errors escape the adapter.
	//
	// Send never retries; the orchestrator's fallback chain is the only
	// recovery mechanism.
	Send(ctx context.Context, msgs []Message) (string, error)

	// Available performs the provider's cheap availability probe: a
	// credential-presence check, a short-timeout reachability ping, or both.
	// The result is advisory only; an available provider may still fail on
	// the real call, and an unavailable provider is simply skipped without
	// being attempted.
	Available(ctx context.Context) bool

	// Name returns the provider's configured name (e.g., "groq").
	Name() string

	// Model returns the model identifier this provider sends.
	Model() string

	// Close releases any resources (idle HTTP connections).
	// After calling Close, the provider should not be used.
	Close() error
}
