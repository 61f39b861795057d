package history

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"
)

// RetentionConfig controls scheduled conversation resets.
type RetentionConfig struct {
	// ResetSchedule is a cron expression describing when the conversation
	// log is cleared (e.g., "0 4 * * *" for daily at 4 AM). Empty disables
	// scheduled resets.
	ResetSchedule string
}

// RetentionScheduler clears the conversation log on a cron schedule, so the
// companion starts fresh conversations at predictable times instead of
// carrying context forever. It never persists anything; a reset is exactly a
// call to Store.Clear, which is safe concurrently with in-flight chats.
type RetentionScheduler struct {
	store   *Store
	config  RetentionConfig
	cron    *cron.Cron
	mu      sync.Mutex
	logger  *slog.Logger
	running bool
}

// NewRetentionScheduler creates a scheduler for the given store.
func NewRetentionScheduler(store *Store, config RetentionConfig) *RetentionScheduler {
	return &RetentionScheduler{
		store:  store,
		config: config,
		cron:   cron.New(),
		logger: slog.Default().With("component", "history.retention"),
	}
}

// Start begins scheduled resets. If no schedule is configured, Start logs
// and returns nil without starting anything. The scheduler stops when the
// context is cancelled.
func (s *RetentionScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.config.ResetSchedule == "" {
		s.logger.Info("reset schedule not configured, skipping scheduler")
		return nil
	}

	if _, err := cron.ParseStandard(s.config.ResetSchedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.config.ResetSchedule, err)
	}

	if _, err := s.cron.AddFunc(s.config.ResetSchedule, s.runReset); err != nil {
		return fmt.Errorf("failed to schedule history reset: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info("history retention scheduler started",
		"schedule", s.config.ResetSchedule,
	)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// runReset executes a single scheduled reset.
func (s *RetentionScheduler) runReset() {
	dropped := s.store.Len()
	s.store.Clear()
	s.logger.Info("scheduled conversation reset completed",
		"dropped_turns", dropped,
	)
}

// Stop stops the scheduler and waits for a running reset to complete.
func (s *RetentionScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil && s.running {
		ctx := s.cron.Stop()
		<-ctx.Done()
		s.running = false
		s.logger.Info("history retention scheduler stopped")
	}
}

// IsRunning reports whether the scheduler is currently running.
func (s *RetentionScheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
