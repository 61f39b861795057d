package providers

import "time"

// Message represents a single message in a conversation.
// It is provider-agnostic and is transformed to provider-specific formats
// by each adapter.
type Message struct {
	// Role identifies the message sender (system, user, assistant).
	Role string `json:"role"`

	// Content is the message text content.
	Content string `json:"content"`
}

// Message role constants.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Config contains configuration for a single provider instance.
type Config struct {
	// Name is the provider identifier (e.g., "groq", "ollama", "openai").
	Name string

	// BaseURL is the API endpoint base URL.
	BaseURL string

	// APIKey is the authentication key. Local providers leave it empty.
	APIKey string

	// Model is the model identifier sent to the provider.
	Model string

	// Timeout is the request timeout for a single completion call.
	// Cloud providers use short timeouts; local inference may run far
	// longer and gets a generous one.
	Timeout time.Duration

	// ProbeTimeout bounds the reachability probe. Probes must stay cheap,
	// so this is clamped to DefaultProbeTimeout when unset or larger.
	ProbeTimeout time.Duration

	// MaxIdleConns is the maximum number of idle connections in the pool.
	MaxIdleConns int

	// MaxIdleConnsPerHost is the maximum idle connections per host.
	MaxIdleConnsPerHost int

	// IdleConnTimeout is how long an idle connection remains in the pool.
	IdleConnTimeout time.Duration
}
