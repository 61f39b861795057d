// Package providers defines the provider abstraction for chat-completion
// backends and the shared HTTP plumbing used by the concrete adapters.
//
// Each adapter (groq, ollama, openai) translates the gateway's uniform
// message list into its backend's wire format, performs exactly one call,
// and normalizes every failure mode into the classified error types in this
// package before it crosses the adapter boundary. Availability probes give
// the orchestrator a cheap, advisory signal for whether an attempt is worth
// making at all.
package providers
