// Package audit records the outcome of every chat turn for operational
// inspection. Records hold metadata only (backend, outcome, timings,
// sizes); prompt and reply text is never persisted, so clearing the
// in-memory history really does forget the conversation.
package audit

import (
	"context"
	"time"
)

// Outcome values for a recorded chat turn.
const (
	OutcomeSuccess   = "success"
	OutcomeAllFailed = "all_failed"
)

// Record is one chat-turn audit entry.
type Record struct {
	// ID is the record's unique identifier.
	ID string `json:"id"`

	// RequestID ties the record to the HTTP request that produced it.
	RequestID string `json:"request_id"`

	// Time is when the turn completed.
	Time time.Time `json:"time"`

	// Outcome is "success" or "all_failed".
	Outcome string `json:"outcome"`

	// Backend is the provider that answered; empty on total failure.
	Backend string `json:"backend"`

	// FailedAttempts counts the providers that failed before the outcome.
	FailedAttempts int `json:"failed_attempts"`

	// PromptChars and ReplyChars are text lengths, not text.
	PromptChars int `json:"prompt_chars"`
	ReplyChars  int `json:"reply_chars"`

	// DurationMs is the total turn duration in milliseconds.
	DurationMs int64 `json:"duration_ms"`
}

// Storage persists audit records.
type Storage interface {
	// Store persists a record.
	Store(ctx context.Context, record *Record) error

	// Recent returns the most recent n records, newest first.
	Recent(ctx context.Context, n int) ([]*Record, error)

	// Close releases the backend.
	Close() error
}
