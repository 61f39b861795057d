// Crimson is an AI chat companion gateway with provider fallback.
//
// It serves a small HTTP API backed by a prioritized chain of chat
// providers (Groq, Ollama, OpenAI), falling back down the chain when a
// provider is unavailable or fails. It also exposes weather lookup and
// video search endpoints for the companion frontend.
//
// Usage:
//
//	# Start the gateway with defaults (env vars configure providers)
//	crimson run
//
//	# Start with a configuration file
//	crimson run --config /etc/crimson/config.yaml
//
//	# Probe provider availability without starting the server
//	crimson check
//
//	# Validate a configuration file
//	crimson validate --config config.yaml
//
//	# Show version information
//	crimson version
package main

func main() {
	Execute()
}
