package chat

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyPrompt is returned when the prompt is empty after trimming.
// Nothing is recorded in the history in that case.
var ErrEmptyPrompt = errors.New("prompt cannot be empty")

// ErrAllProvidersFailed matches any AllFailedError via errors.Is, for
// callers that only care whether the turn exhausted the chain.
var ErrAllProvidersFailed = errors.New("all providers failed")

// Attempt records one failed provider attempt. Providers skipped by their
// availability probe do not produce an Attempt.
type Attempt struct {
	// Provider is the name of the provider that was attempted.
	Provider string

	// Err is the classified failure returned by the adapter.
	Err error
}

func (a Attempt) String() string {
	return fmt.Sprintf("%s: %v", a.Provider, a.Err)
}

// AllFailedError is the terminal failure of a chat turn: every provider in
// the chain was either skipped or failed. The pending user turn has already
// been rolled back when this error is returned.
type AllFailedError struct {
	// Attempts holds the failures in the order they were attempted.
	Attempts []Attempt
}

func (e *AllFailedError) Error() string {
	if len(e.Attempts) == 0 {
		return "all providers unavailable"
	}

	parts := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		parts[i] = a.String()
	}
	return fmt.Sprintf("all providers failed: %s", strings.Join(parts, "; "))
}

// Unwrap returns the last attempt's cause, so classified provider errors
// stay reachable through errors.As.
func (e *AllFailedError) Unwrap() error {
	if len(e.Attempts) == 0 {
		return nil
	}
	return e.Attempts[len(e.Attempts)-1].Err
}

// Is reports a match against the ErrAllProvidersFailed sentinel.
func (e *AllFailedError) Is(target error) bool {
	return target == ErrAllProvidersFailed
}

// Details returns one human-readable line per failed attempt, in attempt
// order. Used to render the failure payload.
func (e *AllFailedError) Details() []string {
	details := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		details[i] = a.String()
	}
	return details
}
