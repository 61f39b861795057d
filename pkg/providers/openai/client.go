package openai

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"crimson-hq/crimson/pkg/providers"
)

// Defaults for the OpenAI adapter. The paid backend is attempted last, so
// its timeout is modest; the sampling parameters match the companion's
// short, conversational replies.
const (
	DefaultBaseURL     = "https://api.openai.com"
	DefaultModel       = "gpt-3.5-turbo"
	DefaultTimeout     = 20 * time.Second
	DefaultMaxTokens   = 200
	DefaultTemperature = 0.7
)

// Provider is the OpenAI provider adapter.
// It implements the providers.Provider interface for the OpenAI chat
// completions API.
type Provider struct {
	*providers.HTTPClient

	// maxTokens and temperature are the sampling parameters this adapter
	// sends. They are fixed per adapter by design.
	maxTokens   int
	temperature float64
}

// NewProvider creates a new OpenAI provider instance.
func NewProvider(config providers.Config) (*Provider, error) {
	if config.Name == "" {
		config.Name = "openai"
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
	if config.MaxIdleConns == 0 {
		config.MaxIdleConns = 10
	}
	if config.MaxIdleConnsPerHost == 0 {
		config.MaxIdleConnsPerHost = 5
	}

	p := &Provider{
		HTTPClient:  providers.NewHTTPClient(config),
		maxTokens:   DefaultMaxTokens,
		temperature: DefaultTemperature,
	}

	slog.Info("OpenAI provider initialized",
		"provider", config.Name,
		"base_url", config.BaseURL,
		"model", config.Model,
	)

	return p, nil
}

// Send sends a chat completion request to OpenAI.
func (p *Provider) Send(ctx context.Context, msgs []providers.Message) (string, error) {
	cfg := p.Config()
	if cfg.APIKey == "" {
		return "", &providers.ConfigError{
			Provider: p.Name(),
			Field:    "api_key",
			Message:  "API key is required",
		}
	}

	url := fmt.Sprintf("%s/v1/chat/completions", cfg.BaseURL)
	headers := map[string]string{
		"Authorization": "Bearer " + cfg.APIKey,
		"Content-Type":  "application/json",
	}

	var resp ChatResponse
	req := TransformRequest(msgs, cfg.Model, p.maxTokens, p.temperature)
	if err := p.DoJSONRequest(ctx, "POST", url, req, &resp, headers); err != nil {
		return "", err
	}

	reply, err := ExtractReply(&resp)
	if err != nil {
		return "", &providers.ParseError{
			Provider: p.Name(),
			Cause:    err,
		}
	}

	slog.Debug("completion request succeeded",
		"provider", p.Name(),
		"model", resp.Model,
		"tokens", resp.Usage.TotalTokens,
	)

	return reply, nil
}

// Available reports whether an API key is configured. No network call.
func (p *Provider) Available(ctx context.Context) bool {
	return p.CredentialProbe()
}
