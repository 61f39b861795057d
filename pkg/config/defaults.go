package config

import "time"

// Default values applied to any field left at its zero value.
const (
	DefaultListenAddress   = ":5000"
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 180 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 15 * time.Second
	DefaultMaxHeaderBytes  = 1 << 20

	DefaultWindow = 20

	DefaultWeatherCity    = "Manila"
	DefaultWeatherTimeout = 8 * time.Second

	DefaultVideoMaxResults = 8
	DefaultVideoTimeout    = 10 * time.Second

	DefaultAuditPath         = "data/audit.db"
	DefaultAuditAsyncBuffer  = 1000
	DefaultAuditWriteTimeout = 5 * time.Second

	DefaultMetricsNamespace = "crimson"
	DefaultMetricsPath      = "/metrics"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// DefaultProviderOrder is the fallback priority order: fastest free cloud
// first, local model second, paid cloud last.
var DefaultProviderOrder = []string{"groq", "ollama", "openai"}

// ApplyDefaults fills any zero-valued field with its default.
// Provider adapter fields (base URL, model, timeout) are left alone; each
// adapter applies its own defaults so they live in one place.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.ListenAddress == "" {
		cfg.Server.ListenAddress = DefaultListenAddress
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Server.MaxHeaderBytes == 0 {
		cfg.Server.MaxHeaderBytes = DefaultMaxHeaderBytes
	}

	if cfg.Chat.Window == 0 {
		cfg.Chat.Window = DefaultWindow
	}

	if len(cfg.Providers.Order) == 0 {
		cfg.Providers.Order = append([]string(nil), DefaultProviderOrder...)
	}

	if cfg.History.MaxTurns == 0 {
		cfg.History.MaxTurns = 2 * cfg.Chat.Window
	}

	if cfg.Weather.DefaultCity == "" {
		cfg.Weather.DefaultCity = DefaultWeatherCity
	}
	if cfg.Weather.Timeout == 0 {
		cfg.Weather.Timeout = DefaultWeatherTimeout
	}

	if cfg.Video.MaxResults == 0 {
		cfg.Video.MaxResults = DefaultVideoMaxResults
	}
	if cfg.Video.Timeout == 0 {
		cfg.Video.Timeout = DefaultVideoTimeout
	}

	if cfg.Audit.Path == "" {
		cfg.Audit.Path = DefaultAuditPath
	}
	if cfg.Audit.AsyncBuffer == 0 {
		cfg.Audit.AsyncBuffer = DefaultAuditAsyncBuffer
	}
	if cfg.Audit.WriteTimeout == 0 {
		cfg.Audit.WriteTimeout = DefaultAuditWriteTimeout
	}

	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = DefaultMetricsPath
	}
	if len(cfg.Metrics.RequestDurationBuckets) == 0 {
		// Spread for LLM latencies: quick cloud replies through slow
		// local inference.
		cfg.Metrics.RequestDurationBuckets = []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60, 120}
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}
}

// DefaultConfig returns a fully defaulted configuration.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
