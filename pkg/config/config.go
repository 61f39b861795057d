package config

import "time"

// Config is the root configuration for the gateway.
type Config struct {
	// Server contains HTTP server settings.
	Server ServerConfig `yaml:"server"`

	// Chat contains chat orchestration settings.
	Chat ChatConfig `yaml:"chat"`

	// Providers contains the provider chain configuration.
	Providers ProvidersConfig `yaml:"providers"`

	// History contains conversation history settings.
	History HistoryConfig `yaml:"history"`

	// Weather contains the weather collaborator settings.
	Weather WeatherConfig `yaml:"weather"`

	// Video contains the video search settings.
	Video VideoConfig `yaml:"video"`

	// Audit contains audit log settings.
	Audit AuditConfig `yaml:"audit"`

	// Metrics contains Prometheus metrics settings.
	Metrics MetricsConfig `yaml:"metrics"`

	// Logging contains structured logging settings.
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// ListenAddress is the address and port to listen on.
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading a request.
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration for writing a response.
	// It must exceed the slowest provider timeout or long local
	// completions are cut off mid-response.
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum duration to wait for the next request
	// on a keep-alive connection.
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is how long graceful shutdown waits for in-flight
	// requests.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxHeaderBytes limits the size of request headers.
	MaxHeaderBytes int `yaml:"max_header_bytes"`

	// StaticDir is the directory served at the root path. Empty disables
	// static serving.
	StaticDir string `yaml:"static_dir"`
}

// ChatConfig contains chat orchestration settings.
type ChatConfig struct {
	// SystemPrompt is the persona instruction prepended to every
	// provider call. Empty selects the built-in default.
	SystemPrompt string `yaml:"system_prompt"`

	// Window is the number of most recent history turns injected as
	// context per request.
	Window int `yaml:"window"`
}

// ProvidersConfig contains the provider chain configuration.
type ProvidersConfig struct {
	// Order is the fallback priority order. Defaults to trying the fast
	// free cloud first, the local model second, and the paid cloud last.
	Order []string `yaml:"order"`

	// Groq, Ollama and OpenAI configure the individual adapters.
	Groq   ProviderConfig `yaml:"groq"`
	Ollama ProviderConfig `yaml:"ollama"`
	OpenAI ProviderConfig `yaml:"openai"`
}

// ProviderConfig configures one provider adapter. Zero fields fall back to
// the adapter's own defaults.
type ProviderConfig struct {
	// BaseURL is the API endpoint base URL.
	BaseURL string `yaml:"base_url"`

	// APIKey is the authentication key. Local providers leave it empty.
	APIKey string `yaml:"api_key"`

	// Model is the model identifier sent to the provider.
	Model string `yaml:"model"`

	// Timeout is the completion request timeout.
	Timeout time.Duration `yaml:"timeout"`
}

// HistoryConfig contains conversation history settings.
type HistoryConfig struct {
	// MaxTurns bounds the shared history. Zero derives 2*Chat.Window.
	MaxTurns int `yaml:"max_turns"`

	// ResetSchedule is an optional cron expression that clears the
	// history on a schedule. Empty disables scheduled resets.
	ResetSchedule string `yaml:"reset_schedule"`
}

// WeatherConfig contains the weather collaborator settings.
type WeatherConfig struct {
	// APIKey is the OpenWeatherMap key. Empty skips the primary
	// provider and uses only the keyless fallback.
	APIKey string `yaml:"api_key"`

	// DefaultCity is used when a request names no city.
	DefaultCity string `yaml:"default_city"`

	// Timeout applies to each weather provider call.
	Timeout time.Duration `yaml:"timeout"`
}

// VideoConfig contains the video search settings.
type VideoConfig struct {
	// MaxResults caps the IDs returned per search.
	MaxResults int `yaml:"max_results"`

	// Timeout applies to the results page fetch.
	Timeout time.Duration `yaml:"timeout"`
}

// AuditConfig contains audit log settings.
type AuditConfig struct {
	// Enabled turns the audit log on.
	Enabled bool `yaml:"enabled"`

	// Path is the SQLite database file path.
	Path string `yaml:"path"`

	// AsyncBuffer is the async write channel capacity.
	AsyncBuffer int `yaml:"async_buffer"`

	// WriteTimeout bounds a single storage write.
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// MetricsConfig contains Prometheus metrics settings.
type MetricsConfig struct {
	// Enabled turns the metrics endpoint on.
	Enabled bool `yaml:"enabled"`

	// Namespace and Subsystem prefix every metric name.
	Namespace string `yaml:"namespace"`
	Subsystem string `yaml:"subsystem"`

	// Path is where the metrics handler is mounted.
	Path string `yaml:"path"`

	// RequestDurationBuckets are the histogram buckets for request and
	// provider latencies, in seconds.
	RequestDurationBuckets []float64 `yaml:"request_duration_buckets"`
}

// LoggingConfig contains structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn or error.
	Level string `yaml:"level"`

	// Format is the output format: json or text.
	Format string `yaml:"format"`
}
