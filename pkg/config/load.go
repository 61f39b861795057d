package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path,
// applies defaults, and validates the result. An empty path skips the file
// stage entirely and yields the defaulted configuration, so the gateway
// runs with no config file at all.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and
// applies environment variable overrides. Overrides use CRIMSON_* names;
// a handful of bare names (GROQ_API_KEY, OLLAMA_URL, OPENAI_API_KEY,
// WEATHER_API_KEY, ...) are honored as well for compatibility with
// existing deployments.
//
// The loading sequence is:
//  1. Load YAML from file (optional)
//  2. Apply default values
//  3. Apply environment variable overrides
//  4. Validate final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the
// configuration.
func applyEnvOverrides(cfg *Config) {
	setString(&cfg.Server.ListenAddress, "CRIMSON_SERVER_LISTEN_ADDRESS")
	setDuration(&cfg.Server.ReadTimeout, "CRIMSON_SERVER_READ_TIMEOUT")
	setDuration(&cfg.Server.WriteTimeout, "CRIMSON_SERVER_WRITE_TIMEOUT")
	setDuration(&cfg.Server.IdleTimeout, "CRIMSON_SERVER_IDLE_TIMEOUT")
	setString(&cfg.Server.StaticDir, "CRIMSON_SERVER_STATIC_DIR")

	setString(&cfg.Chat.SystemPrompt, "CRIMSON_CHAT_SYSTEM_PROMPT")
	setInt(&cfg.Chat.Window, "CRIMSON_CHAT_WINDOW")

	// Provider credentials keep their conventional bare names.
	setString(&cfg.Providers.Groq.APIKey, "GROQ_API_KEY", "CRIMSON_PROVIDERS_GROQ_API_KEY")
	setString(&cfg.Providers.Groq.Model, "GROQ_MODEL", "CRIMSON_PROVIDERS_GROQ_MODEL")
	setString(&cfg.Providers.Groq.BaseURL, "CRIMSON_PROVIDERS_GROQ_BASE_URL")

	setString(&cfg.Providers.Ollama.BaseURL, "OLLAMA_URL", "CRIMSON_PROVIDERS_OLLAMA_BASE_URL")
	setString(&cfg.Providers.Ollama.Model, "OLLAMA_MODEL", "CRIMSON_PROVIDERS_OLLAMA_MODEL")

	setString(&cfg.Providers.OpenAI.APIKey, "OPENAI_API_KEY", "CRIMSON_PROVIDERS_OPENAI_API_KEY")
	setString(&cfg.Providers.OpenAI.Model, "OPENAI_MODEL", "CRIMSON_PROVIDERS_OPENAI_MODEL")
	setString(&cfg.Providers.OpenAI.BaseURL, "CRIMSON_PROVIDERS_OPENAI_BASE_URL")

	setInt(&cfg.History.MaxTurns, "CRIMSON_HISTORY_MAX_TURNS")
	setString(&cfg.History.ResetSchedule, "CRIMSON_HISTORY_RESET_SCHEDULE")

	setString(&cfg.Weather.APIKey, "WEATHER_API_KEY", "CRIMSON_WEATHER_API_KEY")
	setString(&cfg.Weather.DefaultCity, "WEATHER_CITY", "CRIMSON_WEATHER_DEFAULT_CITY")

	setBool(&cfg.Audit.Enabled, "CRIMSON_AUDIT_ENABLED")
	setString(&cfg.Audit.Path, "CRIMSON_AUDIT_PATH")

	setBool(&cfg.Metrics.Enabled, "CRIMSON_METRICS_ENABLED")

	setString(&cfg.Logging.Level, "CRIMSON_LOGGING_LEVEL")
	setString(&cfg.Logging.Format, "CRIMSON_LOGGING_FORMAT")
}

// setString assigns the first non-empty environment variable to dst.
func setString(dst *string, names ...string) {
	for _, name := range names {
		if val := os.Getenv(name); val != "" {
			*dst = val
			return
		}
	}
}

func setInt(dst *int, names ...string) {
	for _, name := range names {
		if val := os.Getenv(name); val != "" {
			if i, err := strconv.Atoi(val); err == nil {
				*dst = i
			}
			return
		}
	}
}

func setBool(dst *bool, names ...string) {
	for _, name := range names {
		if val := os.Getenv(name); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				*dst = b
			}
			return
		}
	}
}

func setDuration(dst *time.Duration, names ...string) {
	for _, name := range names {
		if val := os.Getenv(name); val != "" {
			if d, err := time.ParseDuration(val); err == nil {
				*dst = d
			}
			return
		}
	}
}
