// Package openai implements the OpenAI chat-completions adapter.
//
// It is the gateway's paid, last-resort backend, and it also defines the
// OpenAI wire format reused by OpenAI-compatible providers (see the groq
// package).
package openai
