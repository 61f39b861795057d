package ollama

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"crimson-hq/crimson/pkg/providers"
)

// Defaults for the Ollama adapter. Local models may be slow and have no cost
// ceiling, so the completion timeout is far more generous than the cloud
// adapters'. The higher temperature is deliberate: the local model gets a
// slightly looser, more playful style.
const (
	DefaultBaseURL     = "http://localhost:11434"
	DefaultModel       = "gemma2:2b"
	DefaultTimeout     = 120 * time.Second
	DefaultNumPredict  = 200
	DefaultTemperature = 0.85
)

// ChatRequest represents an Ollama /api/chat request.
type ChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  Options       `json:"options,omitempty"`
}

// ChatMessage represents a message in Ollama format.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Options carries Ollama sampling parameters.
type Options struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// ChatResponse represents an Ollama /api/chat response.
type ChatResponse struct {
	Model     string      `json:"model"`
	CreatedAt string      `json:"created_at"`
	Message   ChatMessage `json:"message"`
	Done      bool        `json:"done"`
}

// Provider is the Ollama provider adapter.
// It implements the providers.Provider interface for Ollama's native chat API.
type Provider struct {
	*providers.HTTPClient

	numPredict  int
	temperature float64
}

// NewProvider creates a new Ollama provider instance.
func NewProvider(config providers.Config) (*Provider, error) {
	if config.Name == "" {
		config.Name = "ollama"
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
		numPredict:  DefaultNumPredict,
		temperature: DefaultTemperature,
	}

	slog.Info("Ollama provider initialized",
		"provider", config.Name,
		"base_url", config.BaseURL,
		"model", config.Model,
	)

	return p, nil
}

// Send sends a chat completion request to Ollama.
func (p *Provider) Send(ctx context.Context, msgs []providers.Message) (string, error) {
	cfg := p.Config()
	url := fmt.Sprintf("%s/api/chat", cfg.BaseURL)

	req := &ChatRequest{
		Model:    cfg.Model,
		Messages: make([]ChatMessage, len(msgs)),
		Stream:   false,
		Options: Options{
			Temperature: p.temperature,
			NumPredict:  p.numPredict,
		},
	}
	for i, msg := range msgs {
		req.Messages[i] = ChatMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	var resp ChatResponse
	if err := p.DoJSONRequest(ctx, "POST", url, req, &resp, nil); err != nil {
		return "", err
	}

	// An empty message content is a valid (if terse) reply.
	reply := strings.TrimSpace(resp.Message.Content)

	slog.Debug("completion request succeeded",
		"provider", p.Name(),
		"model", resp.Model,
	)

	return reply, nil
}

// Available pings the Ollama tags endpoint with a short timeout.
// Any failure means unavailable and is never propagated.
func (p *Provider) Available(ctx context.Context) bool {
	return p.ReachabilityProbe(ctx, fmt.Sprintf("%s/api/tags", p.Config().BaseURL))
}
