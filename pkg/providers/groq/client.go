package groq

import (
	"context"
	"log/slog"
	"time"

	"crimson-hq/crimson/pkg/providers"
	"crimson-hq/crimson/pkg/providers/openai"
)

// Defaults for the Groq adapter. Groq serves the OpenAI wire format under
// its /openai path prefix and answers quickly, so the timeout is short.
const (
	DefaultBaseURL = "https://api.groq.com/openai"
	DefaultModel   = "llama-3.1-8b-instant"
	DefaultTimeout = 15 * time.Second
)

// Provider is the Groq provider adapter. It delegates to the OpenAI adapter
// since the request/response format is the same.
type Provider struct {
	*openai.Provider
}

// NewProvider creates a new Groq provider instance.
func NewProvider(config providers.Config) (*Provider, error) {
	if config.Name == "" {
		config.Name = "groq"
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	openaiProvider, err := openai.NewProvider(config)
	if err != nil {
		return nil, err
	}

	p := &Provider{
		Provider: openaiProvider,
	}

	slog.Info("Groq provider initialized",
		"provider", config.Name,
		"base_url", config.BaseURL,
		"model", config.Model,
	)

	return p, nil
}

// Send delegates to the OpenAI adapter.
func (p *Provider) Send(ctx context.Context, msgs []providers.Message) (string, error) {
	return p.Provider.Send(ctx, msgs)
}

// Available reports whether an API key is configured. No network call.
func (p *Provider) Available(ctx context.Context) bool {
	return p.CredentialProbe()
}
