// Package groq implements the Groq adapter, the gateway's first-priority
// backend: fast, free-tier, and OpenAI-compatible on the wire.
//
// The adapter reuses the OpenAI request/response format with Groq's base URL,
// model, and a tighter timeout.
package groq
