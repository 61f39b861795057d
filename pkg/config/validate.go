package config

import (
	"fmt"
	"strings"
)

// knownProviders are the provider names the factory can build.
var knownProviders = map[string]bool{
	"groq":   true,
	"ollama": true,
	"openai": true,
}

// Validate checks the configuration for invalid or inconsistent values.
// It returns the first error found.
func Validate(cfg *Config) error {
	if cfg.Server.ListenAddress == "" {
		return fmt.Errorf("server.listen_address must not be empty")
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("server.read_timeout must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server.write_timeout must be positive")
	}

	if cfg.Chat.Window <= 0 {
		return fmt.Errorf("chat.window must be positive")
	}

	if len(cfg.Providers.Order) == 0 {
		return fmt.Errorf("providers.order must name at least one provider")
	}
	seen := make(map[string]bool, len(cfg.Providers.Order))
	for _, name := range cfg.Providers.Order {
		if !knownProviders[name] {
			return fmt.Errorf("providers.order contains unknown provider %q (known: groq, ollama, openai)", name)
		}
		if seen[name] {
			return fmt.Errorf("providers.order lists provider %q twice", name)
		}
		seen[name] = true
	}

	if cfg.History.MaxTurns <= 0 {
		return fmt.Errorf("history.max_turns must be positive")
	}
	if cfg.History.MaxTurns < cfg.Chat.Window {
		return fmt.Errorf("history.max_turns (%d) must be at least chat.window (%d)",
			cfg.History.MaxTurns, cfg.Chat.Window)
	}

	if cfg.Video.MaxResults <= 0 {
		return fmt.Errorf("video.max_results must be positive")
	}

	if cfg.Audit.Enabled && cfg.Audit.Path == "" {
		return fmt.Errorf("audit.path must not be empty when audit is enabled")
	}

	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", cfg.Logging.Level)
	}

	switch strings.ToLower(cfg.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("logging.format must be json or text (got %q)", cfg.Logging.Format)
	}

	return nil
}
