package chat

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"crimson-hq/crimson/pkg/history"
	"crimson-hq/crimson/pkg/providers"
)

// Result is the outcome of a successful chat turn.
type Result struct {
	// Reply is the assistant's reply text.
	Reply string

	// Backend is the name of the provider that produced the reply.
	Backend string

	// Failures holds the failed attempts that preceded the success, in
	// attempt order. Empty when the first attempted provider succeeded.
	Failures []Attempt

	// Duration is the total time spent on the turn, probes included.
	Duration time.Duration
}

// ProviderStatus describes one provider's current advisory availability.
type ProviderStatus struct {
	Name      string `json:"name"`
	Model     string `json:"model"`
	Available bool   `json:"available"`
}

// Orchestrator runs the chat-turn state machine over an ordered provider
// chain and the shared history store.
//
// Provider attempts are strictly sequential. Parallel speculative calls
// would incur cost on several providers for one user turn, so each
// provider is tried at most once, in priority order, and the first
// success wins.
type Orchestrator struct {
	chain     []providers.Provider
	store     *history.Store
	assembler *Assembler
	logger    *slog.Logger
}

// NewOrchestrator creates an orchestrator over the given chain and store.
// The chain's order is the fallback priority order.
func NewOrchestrator(chain []providers.Provider, store *history.Store, assembler *Assembler) *Orchestrator {
	return &Orchestrator{
		chain:     chain,
		store:     store,
		assembler: assembler,
		logger:    slog.Default().With("component", "chat.orchestrator"),
	}
}

// Do runs one chat turn for the given prompt.
//
// The user turn is recorded in the history before any provider attempt and
// stays recorded on success. On total failure the pending user turn is
// removed again and an *AllFailedError carrying every per-provider cause
// is returned, so the history shows no net drift for a failed turn.
func (o *Orchestrator) Do(ctx context.Context, prompt string) (*Result, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}

	start := time.Now()

	o.store.Append(history.Turn{Role: history.RoleUser, Content: prompt})

	var failures []Attempt

	for _, provider := range o.chain {
		if !provider.Available(ctx) {
			// Skipped providers are not failures and do not appear in
			// the returned error list.
			o.logger.Debug("provider unavailable, skipping",
				"provider", provider.Name(),
			)
			continue
		}

		msgs := o.assembler.Assemble(prompt)

		reply, err := provider.Send(ctx, msgs)
		if err != nil {
			failures = append(failures, Attempt{
				Provider: provider.Name(),
				Err:      err,
			})
			o.logger.Warn("provider attempt failed",
				"provider", provider.Name(),
				"error", err,
			)
			continue
		}

		o.store.Append(history.Turn{Role: history.RoleAssistant, Content: reply})

		o.logger.Info("chat turn completed",
			"backend", provider.Name(),
			"failed_attempts", len(failures),
			"duration_ms", time.Since(start).Milliseconds(),
		)

		return &Result{
			Reply:    reply,
			Backend:  provider.Name(),
			Failures: failures,
			Duration: time.Since(start),
		}, nil
	}

	// Undo the recording so a failed turn leaves no trace.
	o.store.RemoveLastIfRole(history.RoleUser)

	o.logger.Error("all providers exhausted",
		"failed_attempts", len(failures),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return nil, &AllFailedError{Attempts: failures}
}

// Status probes every provider in chain order and reports its advisory
// availability. First returns which provider Do would attempt first right
// now, or the empty string when none probe available.
func (o *Orchestrator) Status(ctx context.Context) []ProviderStatus {
	statuses := make([]ProviderStatus, len(o.chain))
	for i, provider := range o.chain {
		statuses[i] = ProviderStatus{
			Name:      provider.Name(),
			Model:     provider.Model(),
			Available: provider.Available(ctx),
		}
	}
	return statuses
}

// First returns the name of the first provider whose probe passes.
func (o *Orchestrator) First(ctx context.Context) string {
	for _, provider := range o.chain {
		if provider.Available(ctx) {
			return provider.Name()
		}
	}
	return ""
}

// Close closes every provider in the chain. The first error is returned
// but all providers are closed regardless.
func (o *Orchestrator) Close() error {
	var first error
	for _, provider := range o.chain {
		if err := provider.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
