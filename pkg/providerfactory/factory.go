// Package providerfactory creates provider adapters from configuration and
// assembles them into the ordered fallback chain.
package providerfactory

import (
	"fmt"
	"log/slog"

	"crimson-hq/crimson/pkg/providers"
	"crimson-hq/crimson/pkg/providers/groq"
	"crimson-hq/crimson/pkg/providers/ollama"
	"crimson-hq/crimson/pkg/providers/openai"
)

// NewProvider creates a provider adapter from the configuration.
// The adapter is selected by config.Name:
//   - "groq": Groq (OpenAI wire format under the /openai prefix)
//   - "ollama": local Ollama instance
//   - "openai": OpenAI API
func NewProvider(config providers.Config) (providers.Provider, error) {
	slog.Debug("creating provider",
		"name", config.Name,
		"base_url", config.BaseURL,
	)

	var provider providers.Provider
	var err error

	switch config.Name {
	case "groq":
		provider, err = groq.NewProvider(config)

	case "ollama":
		provider, err = ollama.NewProvider(config)

	case "openai":
		provider, err = openai.NewProvider(config)

	default:
		return nil, &providers.ConfigError{
			Provider: config.Name,
			Field:    "name",
			Message:  fmt.Sprintf("unsupported provider: %q (supported: groq, ollama, openai)", config.Name),
		}
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create provider %q: %w", config.Name, err)
	}

	return provider, nil
}

// NewChain creates the fallback chain from an ordered list of provider
// configurations. Order is priority: the first provider is attempted first.
// On any error the providers created so far are closed.
func NewChain(configs []providers.Config) ([]providers.Provider, error) {
	chain := make([]providers.Provider, 0, len(configs))

	for _, config := range configs {
		provider, err := NewProvider(config)
		if err != nil {
			for _, p := range chain {
				p.Close()
			}
			return nil, err
		}
		chain = append(chain, provider)
	}

	slog.Info("provider chain assembled", "providers", len(chain))

	return chain, nil
}
