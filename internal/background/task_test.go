package background

import (
	"context"
	"errors"
	"testing"
	"time"

	"resumeforge/internal/config"
)

func TestInMemoryTaskStoreLifecycle(t *testing.T) {
	store := NewInMemoryTaskStore()
	ctx := context.Background()

	result := &TaskResult{
		ProcessID: "enh_test1",
		Type:      TaskTypeEnhance,
		Status:    TaskStatusAccepted,
		CreatedAt: time.Now(),
	}

	if err := store.Store(ctx, result); err != nil {
		t.Fatal(err)
	}

	got, err := store.Get(ctx, "enh_test1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != TaskStatusAccepted {
		t.Errorf("status = %q, want ACCEPTED", got.Status)
	}

	got.Status = TaskStatusSuccess
	if err := store.Update(ctx, got); err != nil {
		t.Fatal(err)
	}
	updated, err := store.Get(ctx, "enh_test1")
	if err != nil {
		t.Fatal(err)
	}
	if updated.Status != TaskStatusSuccess {
		t.Errorf("status after update = %q, want SUCCESS", updated.Status)
	}

	if err := store.Delete(ctx, "enh_test1"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Get(ctx, "enh_test1"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("error after delete = %v, want ErrTaskNotFound", err)
	}
}

func TestInMemoryTaskStoreMissingTask(t *testing.T) {
	store := NewInMemoryTaskStore()
	ctx := context.Background()

	if _, err := store.Get(ctx, "enh_unknown"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Get error = %v, want ErrTaskNotFound", err)
	}
	if err := store.Update(ctx, &TaskResult{ProcessID: "enh_unknown"}); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Update error = %v, want ErrTaskNotFound", err)
	}
}

func TestInMemoryTaskStoreCleanup(t *testing.T) {
	store := NewInMemoryTaskStore()
	ctx := context.Background()

	old := &TaskResult{
		ProcessID: "enh_old",
		Status:    TaskStatusSuccess,
		CreatedAt: time.Now().Add(-48 * time.Hour),
	}
	fresh := &TaskResult{
		ProcessID: "enh_fresh",
		Status:    TaskStatusAccepted,
		CreatedAt: time.Now(),
	}
	if err := store.Store(ctx, old); err != nil {
		t.Fatal(err)
	}
	if err := store.Store(ctx, fresh); err != nil {
		t.Fatal(err)
	}

	if err := store.Cleanup(ctx, 24*time.Hour); err != nil {
		t.Fatal(err)
	}

	if _, err := store.Get(ctx, "enh_old"); !errors.Is(err, ErrTaskNotFound) {
		t.Error("expired task survived cleanup")
	}
	if _, err := store.Get(ctx, "enh_fresh"); err != nil {
		t.Errorf("fresh task removed by cleanup: %v", err)
	}
}

func TestValidateTaskManagerConfig(t *testing.T) {
	tests := []struct {
		name        string
		workers     int
		queue       int
		wantWorkers int
		wantQueue   int
		wantErr     bool
	}{
		{"valid", 10, 100, 10, 100, false},
		{"zero values use defaults", 0, 0, DefaultMaxWorkers, DefaultMaxQueueSize, false},
		{"too many workers", MaxWorkers + 1, 100, 0, 0, true},
		{"too large queue", 10, MaxQueueSize + 1, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Workers.PoolSize = tt.workers
			cfg.Workers.QueueSize = tt.queue

			workers, queue, err := validateTaskManagerConfig(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if workers != tt.wantWorkers || queue != tt.wantQueue {
				t.Errorf("resolved = %d/%d, want %d/%d", workers, queue, tt.wantWorkers, tt.wantQueue)
			}
		})
	}
}
