package history

import (
	"context"
	"testing"
)

func TestRetentionScheduler_NoSchedule(t *testing.T) {
	store := NewStore(0)
	scheduler := NewRetentionScheduler(store, RetentionConfig{})

	if err := scheduler.Start(context.Background()); err != nil {
		t.Fatalf("Start() with empty schedule returned error: %v", err)
	}
	if scheduler.IsRunning() {
		t.Error("scheduler should not run without a schedule")
	}
}

func TestRetentionScheduler_InvalidSchedule(t *testing.T) {
	store := NewStore(0)
	scheduler := NewRetentionScheduler(store, RetentionConfig{
		ResetSchedule: "not a cron expression",
	})

	if err := scheduler.Start(context.Background()); err == nil {
		t.Fatal("Start() with invalid schedule should return an error")
	}
}

func TestRetentionScheduler_StartStop(t *testing.T) {
	store := NewStore(0)
	scheduler := NewRetentionScheduler(store, RetentionConfig{
		ResetSchedule: "0 4 * * *",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := scheduler.Start(ctx); err != nil {
		t.Fatalf("Start() returned error: %v", err)
	}
	if !scheduler.IsRunning() {
		t.Error("scheduler should be running after Start")
	}

	scheduler.Stop()
	if scheduler.IsRunning() {
		t.Error("scheduler should not be running after Stop")
	}
}

func TestRetentionScheduler_ResetClearsStore(t *testing.T) {
	store := NewStore(0)
	store.Append(Turn{Role: RoleUser, Content: "hi"})
	store.Append(Turn{Role: RoleAssistant, Content: "hello"})

	scheduler := NewRetentionScheduler(store, RetentionConfig{})
	scheduler.runReset()

	if got := store.Len(); got != 0 {
		t.Errorf("Len() after reset = %d, want 0", got)
	}
}
